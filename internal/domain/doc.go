// Package domain defines the core business entities of the service: country
// and weather records fetched from upstream providers, the aggregated
// country-with-weather view, and registered users.
package domain
