package categories

import "github.com/stockpilot-erp/stockpilot-erp/internal/platform/memdb"

// Repository stores categories in memory.
type Repository struct {
	table *memdb.Table[Category]
}

func NewRepository() *Repository {
	return &Repository{table: memdb.NewTable[Category]()}
}

func (r *Repository) List() []Category {
	return r.table.List()
}

func (r *Repository) Get(id int64) (Category, bool) {
	return r.table.Get(id)
}

func (r *Repository) Insert(build func(id int64) Category) Category {
	return r.table.Insert(build)
}
