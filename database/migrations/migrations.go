// Package migrations registers the schema migrations with pkg/migration.
// Each migration calls migration.Register from init(); cmd/orderdesk imports
// this package for its side effects.
package migrations
