// Package service contains the application-specific use cases and business
// logic. Its centerpiece is the country aggregation engine, which resolves a
// country name to a canonical record, derives the capital, conditionally
// fetches weather for it, and paginates the bulk country listing.
//
// Services receive their dependencies (upstream data clients, loggers)
// through constructor injection and depend on interfaces, never on concrete
// infrastructure implementations.
package service
