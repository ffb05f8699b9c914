package migrations_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/shashiranjanraj/orderdesk/database/migrations"
	"github.com/shashiranjanraj/orderdesk/pkg/migration"
	"github.com/shashiranjanraj/orderdesk/pkg/testkit"
)

var tables = []string{"categories", "products", "customers", "orders", "order_items"}

func TestMigrateCreatesEveryTable(t *testing.T) {
	db := testkit.NewDB(t)
	r := migration.New(db, &bytes.Buffer{})

	n, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, len(tables), n)
	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	n, err = r.Run()
	require.NoError(t, err)
	assert.Zero(t, n, "second run has nothing pending")
}

func TestRollbackDropsEveryTable(t *testing.T) {
	db := testkit.NewDB(t)
	r := migration.New(db, nil)

	_, err := r.Run()
	require.NoError(t, err)

	n, err := r.Rollback()
	require.NoError(t, err)
	assert.Equal(t, len(tables), n)
	for _, table := range tables {
		assert.False(t, db.Migrator().HasTable(table), table)
	}

	rows, err := r.Status()
	require.NoError(t, err)
	require.Len(t, rows, len(tables))
	for _, row := range rows {
		assert.False(t, row.Ran, row.Name)
	}
}
