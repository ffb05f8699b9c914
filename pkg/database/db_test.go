package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDialector(t *testing.T) {
	for _, driver := range []string{"sqlite", "postgres", "mysql", "sqlserver"} {
		d, err := buildDialector(driver, "dsn")
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}

	_, err := buildDialector("oracle", "dsn")
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestConnectSQLiteMemory(t *testing.T) {
	db, err := Connect("sqlite", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.NoError(t, Ping(context.Background(), db))

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestConnectUnknownDriver(t *testing.T) {
	_, err := Connect("nope", "")
	assert.Error(t, err)
}
