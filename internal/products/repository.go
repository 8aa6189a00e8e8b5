package products

import "github.com/stockpilot-erp/stockpilot-erp/internal/platform/memdb"

// Repository stores products in memory.
type Repository struct {
	table *memdb.Table[Product]
}

func NewRepository() *Repository {
	return &Repository{table: memdb.NewTable[Product]()}
}

func (r *Repository) List() []Product {
	return r.table.List()
}

func (r *Repository) Get(id int64) (Product, bool) {
	return r.table.Get(id)
}

// FindBySku returns the first product with a matching SKU. Uniqueness is not
// enforced on create, so duplicates resolve to the earliest insert.
func (r *Repository) FindBySku(sku string) (Product, bool) {
	return r.table.Find(func(p Product) bool { return p.Sku == sku })
}

func (r *Repository) Insert(build func(id int64) Product) Product {
	return r.table.Insert(build)
}

func (r *Repository) Update(id int64, apply func(Product) Product) (Product, bool) {
	return r.table.Update(id, apply)
}
