// Package store defines the persistence interfaces and their shared error
// contract. Concrete implementations live under internal/platform.
package store
