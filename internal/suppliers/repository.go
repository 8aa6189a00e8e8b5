package suppliers

import "github.com/stockpilot-erp/stockpilot-erp/internal/platform/memdb"

// Repository stores suppliers in memory.
type Repository struct {
	table *memdb.Table[Supplier]
}

func NewRepository() *Repository {
	return &Repository{table: memdb.NewTable[Supplier]()}
}

func (r *Repository) List() []Supplier {
	return r.table.List()
}

func (r *Repository) Get(id int64) (Supplier, bool) {
	return r.table.Get(id)
}

func (r *Repository) Insert(build func(id int64) Supplier) Supplier {
	return r.table.Insert(build)
}

func (r *Repository) Update(id int64, apply func(Supplier) Supplier) (Supplier, bool) {
	return r.table.Update(id, apply)
}
