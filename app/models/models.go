// Package models defines the persisted entities.
//
// Relationship fields on write payloads are references only: services read
// their ID and resolve it against the store. Saves never write associations.
package models

// All lists every model in dependency order, for migrations and tests.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Product{},
		&Customer{},
		&Order{},
		&OrderItem{},
	}
}
