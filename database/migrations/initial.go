package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/pkg/migration"
)

// Registration order is dependency order: each table's foreign keys point
// only at tables created before it.
func init() {
	migration.Register("20260101000001_create_categories_table", &createTable{model: &models.Category{}, table: "categories"})
	migration.Register("20260101000002_create_products_table", &createTable{model: &models.Product{}, table: "products"})
	migration.Register("20260101000003_create_customers_table", &createTable{model: &models.Customer{}, table: "customers"})
	migration.Register("20260101000004_create_orders_table", &createTable{model: &models.Order{}, table: "orders"})
	migration.Register("20260101000005_create_order_items_table", &createTable{model: &models.OrderItem{}, table: "order_items"})
}

// createTable creates one entity table with its indexes and constraints.
type createTable struct {
	model interface{}
	table string
}

func (m *createTable) Up(db *gorm.DB) error {
	return db.Migrator().AutoMigrate(m.model)
}

func (m *createTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(m.table)
}
