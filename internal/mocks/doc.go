// Package mocks provides hand-written test doubles for the service and store
// interfaces. Each mock exposes function fields so tests can override exactly
// the calls they care about; unset fields fall back to a simple in-memory
// default where one makes sense.
package mocks
