package graphql

import (
	"context"

	"github.com/graphql-go/graphql"
)

type (
	listFunc[T any] func(ctx context.Context, withRelations bool) ([]T, error)
	getFunc[T any]  func(ctx context.Context, id uint, withRelations bool) (*T, error)
)

// addEntity registers the list field (plural) and the by-id field (single)
// for one entity, both taking the entity's include flag.
func addEntity[T any](fields graphql.Fields, plural, single, flag string, typ *graphql.Object, list listFunc[T], get getFunc[T]) {
	include := &graphql.ArgumentConfig{Type: graphql.Boolean, DefaultValue: false}

	fields[plural] = &graphql.Field{
		Type: graphql.NewList(typ),
		Args: graphql.FieldConfigArgument{flag: include},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return list(p.Context, boolArg(p, flag))
		},
	}

	fields[single] = &graphql.Field{
		Type: typ,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			flag: include,
		},
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id, _ := p.Args["id"].(int)
			if id <= 0 {
				return nil, nil
			}
			return get(p.Context, uint(id), boolArg(p, flag))
		},
	}
}

func boolArg(p graphql.ResolveParams, name string) bool {
	b, _ := p.Args[name].(bool)
	return b
}
