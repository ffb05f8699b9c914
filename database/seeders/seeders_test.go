package seeders_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/database/seeders"
	"github.com/shashiranjanraj/orderdesk/pkg/testkit"
)

func TestRunAllSeedsDemoDataOnce(t *testing.T) {
	db := testkit.NewDB(t, models.All()...)
	svc := services.New(repositories.NewSet(db))
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, seeders.RunAll(ctx, svc, &out))
	assert.Contains(t, out.String(), "Running seeder: demo")

	items, err := svc.OrderItems.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Cola", items[0].Product.Name)
	assert.Equal(t, 3, items[0].Quantity)

	require.NoError(t, seeders.RunAll(ctx, svc, nil))
	categories, err := svc.Categories.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, categories, 2, "reseeding is a no-op")
}
