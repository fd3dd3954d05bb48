// Package api contains the HTTP handlers for the public endpoints: user
// registration and login, and the country/weather aggregation routes.
// Handlers translate between HTTP and the service layer; they never talk to
// upstream APIs or the store implementation directly.
package api
