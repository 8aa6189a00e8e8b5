package inventory

import "github.com/stockpilot-erp/stockpilot-erp/internal/platform/memdb"

// Repository stores inventory rows in memory.
type Repository struct {
	table *memdb.Table[Item]
}

func NewRepository() *Repository {
	return &Repository{table: memdb.NewTable[Item]()}
}

func (r *Repository) List() []Item {
	return r.table.List()
}

func (r *Repository) Get(id int64) (Item, bool) {
	return r.table.Get(id)
}

func (r *Repository) ListByLocation(locationID int64) []Item {
	return r.table.Filter(func(it Item) bool { return it.LocationID == locationID })
}

func (r *Repository) ListByProduct(productID int64) []Item {
	return r.table.Filter(func(it Item) bool { return it.ProductID == productID })
}

// FindItem locates the row for a (product, location) pair by linear scan.
func (r *Repository) FindItem(productID, locationID int64) (Item, bool) {
	return r.table.Find(func(it Item) bool {
		return it.ProductID == productID && it.LocationID == locationID
	})
}

func (r *Repository) Insert(build func(id int64) Item) Item {
	return r.table.Insert(build)
}

func (r *Repository) Update(id int64, apply func(Item) Item) (Item, bool) {
	return r.table.Update(id, apply)
}
