package locations

import "github.com/stockpilot-erp/stockpilot-erp/internal/platform/memdb"

// Repository stores locations in memory.
type Repository struct {
	table *memdb.Table[Location]
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{table: memdb.NewTable[Location]()}
}

func (r *Repository) List() []Location {
	return r.table.List()
}

func (r *Repository) Get(id int64) (Location, bool) {
	return r.table.Get(id)
}

func (r *Repository) Insert(build func(id int64) Location) Location {
	return r.table.Insert(build)
}

func (r *Repository) Update(id int64, apply func(Location) Location) (Location, bool) {
	return r.table.Update(id, apply)
}
