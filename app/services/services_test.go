package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/testkit"
)

type fixture struct {
	repos *repositories.Set
	svc   *Set
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := repositories.NewSet(testkit.NewDB(t, models.All()...))
	return &fixture{repos: repos, svc: New(repos)}
}

// seed creates Drinks > Cola, customer Ana with one order holding 3 Colas.
func (f *fixture) seed(t *testing.T) (*models.Category, *models.Product, *models.Customer, *models.Order, *models.OrderItem) {
	t.Helper()
	ctx := context.Background()

	cat, err := f.svc.Categories.Create(ctx, &models.Category{Name: "Drinks"})
	require.NoError(t, err)
	prod, err := f.svc.Products.Create(ctx, &models.Product{Name: "Cola", Price: 2.5, Description: "soda", Category: &models.Category{ID: cat.ID}})
	require.NoError(t, err)
	cust, err := f.svc.Customers.Create(ctx, &models.Customer{Name: "Ana", Email: "ana@x.com", Phone: "123"})
	require.NoError(t, err)
	order, err := f.svc.Orders.Create(ctx, &models.Order{Customer: &models.Customer{ID: cust.ID}})
	require.NoError(t, err)
	item, err := f.svc.OrderItems.Create(ctx, &models.OrderItem{
		Order:    &models.Order{ID: order.ID},
		Product:  &models.Product{ID: prod.ID},
		Quantity: 3,
	})
	require.NoError(t, err)
	return cat, prod, cust, order, item
}

func assertLookup(t *testing.T, err error, kind error, entity string, id uint) {
	t.Helper()
	require.ErrorIs(t, err, kind)
	var lookup *LookupError
	require.True(t, errors.As(err, &lookup))
	assert.Equal(t, entity, lookup.Entity)
	assert.Equal(t, id, lookup.ID)
}

func TestScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, prod, _, order, item := f.seed(t)

	got, err := f.svc.OrderItems.Get(ctx, item.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, order.ID, got.OrderID)
	assert.Equal(t, prod.ID, got.ProductID)

	withProducts, err := f.svc.Categories.Get(ctx, cat.ID, true)
	require.NoError(t, err)
	require.Len(t, withProducts.Products, 1)
	assert.Equal(t, "Cola", withProducts.Products[0].Name)
}

func TestGetMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Categories.Get(ctx, 9, false)
	assertLookup(t, err, ErrNotFound, "Category", 9)
	_, err = f.svc.Products.Get(ctx, 9, true)
	assertLookup(t, err, ErrNotFound, "Product", 9)
	_, err = f.svc.Customers.Get(ctx, 9, false)
	assertLookup(t, err, ErrNotFound, "Customer", 9)
	_, err = f.svc.Orders.Get(ctx, 9, false)
	assertLookup(t, err, ErrNotFound, "Order", 9)
	_, err = f.svc.OrderItems.Get(ctx, 9, false)
	assertLookup(t, err, ErrNotFound, "OrderItem", 9)
}

func TestCategoryUpdateOverwritesName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, _, _, _, _ := f.seed(t)

	updated, err := f.svc.Categories.Update(ctx, cat.ID, &models.Category{ID: 77, Name: "Beverages"})
	require.NoError(t, err)
	assert.Equal(t, cat.ID, updated.ID, "payload id is ignored")
	assert.Equal(t, "Beverages", updated.Name)

	_, err = f.svc.Categories.Update(ctx, 404, &models.Category{Name: "x"})
	assertLookup(t, err, ErrNotFound, "Category", 404)
}

func TestCustomerUpdateOverwritesUnconditionally(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, cust, _, _ := f.seed(t)

	updated, err := f.svc.Customers.Update(ctx, cust.ID, &models.Customer{Name: "Ana B", Email: "anab@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana B", updated.Name)
	assert.Equal(t, "anab@x.com", updated.Email)
	assert.Empty(t, updated.Phone, "blank phone overwrites")

	stored, err := f.svc.Customers.Get(ctx, cust.ID, false)
	require.NoError(t, err)
	assert.Empty(t, stored.Phone)
}

func TestDuplicatesAreConstraintViolations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t)

	_, err := f.svc.Categories.Create(ctx, &models.Category{Name: "Drinks"})
	assert.ErrorIs(t, err, ErrConstraint)

	_, err = f.svc.Customers.Create(ctx, &models.Customer{Name: "Other", Email: "ana@x.com", Phone: "9"})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestProductCreateResolvesCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, _, _, _, _ := f.seed(t)

	_, err := f.svc.Products.Create(ctx, &models.Product{Name: "Tea", Price: 1, Description: "hot", Category: &models.Category{ID: 99}})
	assertLookup(t, err, ErrRelatedNotFound, "Category", 99)
	assert.Equal(t, "Category with ID 99 not found", err.Error())

	p, err := f.svc.Products.Create(ctx, &models.Product{Name: "Tea", Price: 1, Description: "hot", CategoryID: cat.ID})
	require.NoError(t, err, "flat categoryId is accepted")
	assert.Equal(t, "Drinks", p.Category.Name)
}

func TestProductCreateIgnoresPayloadCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, _, _, _, _ := f.seed(t)

	p, err := f.svc.Products.Create(ctx, &models.Product{Name: "Tea", Price: 1, Description: "hot", Category: &models.Category{ID: cat.ID, Name: "Forged"}})
	require.NoError(t, err)
	assert.Equal(t, "Drinks", p.Category.Name)

	stored, err := f.svc.Categories.Get(ctx, cat.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", stored.Name, "nested payload objects are never written")
}

func TestProductUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, prod, _, _, _ := f.seed(t)
	food, err := f.svc.Categories.Create(ctx, &models.Category{Name: "Food"})
	require.NoError(t, err)

	updated, err := f.svc.Products.Update(ctx, prod.ID, &models.Product{Name: "Cola Zero", Price: 3, Description: "diet"})
	require.NoError(t, err)
	assert.Equal(t, cat.ID, updated.CategoryID, "category kept without a reference")
	require.NotNil(t, updated.Category, "category embedded without a reference")
	assert.Equal(t, cat.Name, updated.Category.Name)
	assert.Equal(t, "Cola Zero", updated.Name)
	assert.Equal(t, 3.0, updated.Price)

	updated, err = f.svc.Products.Update(ctx, prod.ID, &models.Product{Name: "Cola", Price: 3, Description: "diet", Category: &models.Category{ID: food.ID}})
	require.NoError(t, err)
	assert.Equal(t, food.ID, updated.CategoryID)

	_, err = f.svc.Products.Update(ctx, prod.ID, &models.Product{Name: "Cola", Category: &models.Category{ID: 555}})
	assertLookup(t, err, ErrRelatedNotFound, "Category", 555)

	stored, err := f.svc.Products.Get(ctx, prod.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Food", stored.Category.Name, "failed update left the row unchanged")
}

func TestOrderCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, cust, _, _ := f.seed(t)
	fixed := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	f.svc.Orders.now = func() time.Time { return fixed }

	o, err := f.svc.Orders.Create(ctx, &models.Order{Customer: &models.Customer{ID: cust.ID, Name: "Forged"}})
	require.NoError(t, err)
	assert.Equal(t, "Ana", o.Customer.Name, "stored customer replaces the payload")
	assert.True(t, fixed.Equal(o.OrderDate))

	explicit := time.Date(2023, 12, 24, 20, 0, 0, 0, time.UTC)
	o, err = f.svc.Orders.Create(ctx, &models.Order{CustomerID: cust.ID, OrderDate: explicit})
	require.NoError(t, err)
	assert.True(t, explicit.Equal(o.OrderDate))

	_, err = f.svc.Orders.Create(ctx, &models.Order{Customer: &models.Customer{ID: 42}})
	assertLookup(t, err, ErrRelatedNotFound, "Customer", 42)
	assert.Equal(t, "Customer with ID 42 not found", err.Error())
}

func TestOrderUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, ana, order, _ := f.seed(t)
	bob, err := f.svc.Customers.Create(ctx, &models.Customer{Name: "Bob", Email: "bob@x.com", Phone: "456"})
	require.NoError(t, err)

	updated, err := f.svc.Orders.Update(ctx, order.ID, &models.Order{})
	require.NoError(t, err)
	assert.Equal(t, ana.ID, updated.CustomerID, "customer retained")
	require.NotNil(t, updated.Customer, "customer embedded without a reference")
	assert.Equal(t, "Ana", updated.Customer.Name)
	assert.True(t, order.OrderDate.Equal(updated.OrderDate), "date retained")

	newDate := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	updated, err = f.svc.Orders.Update(ctx, order.ID, &models.Order{OrderDate: newDate, Customer: &models.Customer{ID: bob.ID}})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, updated.CustomerID)
	assert.True(t, newDate.Equal(updated.OrderDate))

	_, err = f.svc.Orders.Update(ctx, order.ID, &models.Order{Customer: &models.Customer{ID: 999}})
	assertLookup(t, err, ErrRelatedNotFound, "Customer", 999)

	_, err = f.svc.Orders.Update(ctx, 999, &models.Order{})
	assertLookup(t, err, ErrNotFound, "Order", 999)
}

func TestOrderItemCreateResolvesBoth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, prod, _, order, _ := f.seed(t)

	_, err := f.svc.OrderItems.Create(ctx, &models.OrderItem{Order: &models.Order{ID: 77}, Product: &models.Product{ID: prod.ID}, Quantity: 1})
	assertLookup(t, err, ErrRelatedNotFound, "Order", 77)

	_, err = f.svc.OrderItems.Create(ctx, &models.OrderItem{Order: &models.Order{ID: order.ID}, Product: &models.Product{ID: 88}, Quantity: 1})
	assertLookup(t, err, ErrRelatedNotFound, "Product", 88)

	all, err := f.svc.OrderItems.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1, "nothing persisted by failed creates")
}

func TestOrderItemUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, prod, _, order, item := f.seed(t)
	other, err := f.svc.Orders.Create(ctx, &models.Order{CustomerID: order.CustomerID})
	require.NoError(t, err)
	water, err := f.svc.Products.Create(ctx, &models.Product{Name: "Water", Price: 1, Description: "still", CategoryID: cat.ID})
	require.NoError(t, err)

	updated, err := f.svc.OrderItems.Update(ctx, item.ID, &models.OrderItem{Quantity: 5, Order: &models.Order{ID: other.ID}})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, order.ID, updated.OrderID, "order is never re-resolved")
	assert.Equal(t, prod.ID, updated.ProductID)
	require.NotNil(t, updated.Order)
	require.NotNil(t, updated.Product)
	assert.Equal(t, order.ID, updated.Order.ID)
	assert.Equal(t, prod.Name, updated.Product.Name)

	updated, err = f.svc.OrderItems.Update(ctx, item.ID, &models.OrderItem{Quantity: 2, Product: &models.Product{ID: water.ID}})
	require.NoError(t, err)
	assert.Equal(t, water.ID, updated.ProductID)

	_, err = f.svc.OrderItems.Update(ctx, item.ID, &models.OrderItem{Quantity: 2, Product: &models.Product{ID: 4040}})
	assertLookup(t, err, ErrRelatedNotFound, "Product", 4040)

	_, err = f.svc.OrderItems.Update(ctx, 4040, &models.OrderItem{Quantity: 1})
	assertLookup(t, err, ErrNotFound, "OrderItem", 4040)
}

func TestDeleteCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, cust, order, item := f.seed(t)

	ok, err := f.svc.Customers.Delete(ctx, cust.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, check := range []struct {
		repo interface {
			ExistsByID(context.Context, uint) (bool, error)
		}
		id uint
	}{
		{f.repos.Customers, cust.ID},
		{f.repos.Orders, order.ID},
		{f.repos.OrderItems, item.ID},
	} {
		exists, err := check.repo.ExistsByID(ctx, check.id)
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestDeleteOrderCascadesItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, prod, cust, order, item := f.seed(t)

	ok, err := f.svc.Orders.Delete(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	exists, _ := f.repos.OrderItems.ExistsByID(ctx, item.ID)
	assert.False(t, exists)
	exists, _ = f.repos.Customers.ExistsByID(ctx, cust.ID)
	assert.True(t, exists, "customer outlives its order")
	exists, _ = f.repos.Products.ExistsByID(ctx, prod.ID)
	assert.True(t, exists)
}

func TestDeleteCategoryWithOrderedProductConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, prod, _, _, _ := f.seed(t)

	ok, err := f.svc.Categories.Delete(ctx, cat.ID)
	assert.ErrorIs(t, err, ErrConstraint)
	assert.False(t, ok)

	exists, _ := f.repos.Products.ExistsByID(ctx, prod.ID)
	assert.True(t, exists, "cascade rolled back")
	exists, _ = f.repos.Categories.ExistsByID(ctx, cat.ID)
	assert.True(t, exists)

	_, err = f.svc.Products.Delete(ctx, prod.ID)
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestDeleteCategoryCascadesProducts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat, err := f.svc.Categories.Create(ctx, &models.Category{Name: "Desserts"})
	require.NoError(t, err)
	cake, err := f.svc.Products.Create(ctx, &models.Product{Name: "Cake", Price: 4, Description: "sweet", CategoryID: cat.ID})
	require.NoError(t, err)

	ok, err := f.svc.Categories.Delete(ctx, cat.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	exists, _ := f.repos.Products.ExistsByID(ctx, cake.ID)
	assert.False(t, exists)
}

// spyRepository records mutating calls and reports every ID as absent.
type spyRepository[T any] struct {
	repositories.Repository[T]
	saves, deletes int
}

func (s *spyRepository[T]) ExistsByID(context.Context, uint) (bool, error) { return false, nil }
func (s *spyRepository[T]) Save(context.Context, *T) error                  { s.saves++; return nil }
func (s *spyRepository[T]) DeleteByID(context.Context, uint) error          { s.deletes++; return nil }

func TestDeleteMissingTouchesNothing(t *testing.T) {
	ctx := context.Background()

	categories := &spyRepository[models.Category]{}
	ok, err := NewCategoryService(categories).Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, categories.deletes)
	assert.Zero(t, categories.saves)

	items := &spyRepository[models.OrderItem]{}
	ok, err = NewOrderItemService(items, nil, nil).Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, items.deletes)

	f := newFixture(t)
	for name, del := range map[string]func(context.Context, uint) (bool, error){
		"categories":  f.svc.Categories.Delete,
		"products":    f.svc.Products.Delete,
		"customers":   f.svc.Customers.Delete,
		"orders":      f.svc.Orders.Delete,
		"order items": f.svc.OrderItems.Delete,
	} {
		ok, err := del(ctx, 12345)
		require.NoError(t, err, name)
		assert.False(t, ok, name)
	}
}

func TestListWithRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t)

	products, err := f.svc.Products.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "Drinks", products[0].Category.Name)

	products, err = f.svc.Products.List(ctx, false)
	require.NoError(t, err)
	assert.Nil(t, products[0].Category)

	customers, err := f.svc.Customers.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, customers[0].Orders, 1)

	orders, err := f.svc.Orders.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Ana", orders[0].Customer.Name)

	items, err := f.svc.OrderItems.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, "Cola", items[0].Product.Name)
}

func TestDeleteLeafEntities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, prod, _, order, item := f.seed(t)

	ok, err := f.svc.OrderItems.Delete(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = f.svc.OrderItems.Get(ctx, item.ID, false)
	assertLookup(t, err, ErrNotFound, "OrderItem", item.ID)

	exists, _ := f.repos.Orders.ExistsByID(ctx, order.ID)
	assert.True(t, exists, "order outlives its item")

	ok, err = f.svc.Products.Delete(ctx, prod.ID)
	require.NoError(t, err, "no item references the product any more")
	assert.True(t, ok)
	_, err = f.svc.Products.Get(ctx, prod.ID, false)
	assertLookup(t, err, ErrNotFound, "Product", prod.ID)
}
