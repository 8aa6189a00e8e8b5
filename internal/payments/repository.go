package payments

import "github.com/stockpilot-erp/stockpilot-erp/internal/platform/memdb"

// Repository stores payments in memory.
type Repository struct {
	table *memdb.Table[Payment]
}

func NewRepository() *Repository {
	return &Repository{table: memdb.NewTable[Payment]()}
}

func (r *Repository) List() []Payment {
	return r.table.List()
}

func (r *Repository) Get(id int64) (Payment, bool) {
	return r.table.Get(id)
}

func (r *Repository) ListByTransaction(transactionID int64) []Payment {
	return r.table.Filter(func(p Payment) bool { return p.TransactionID == transactionID })
}

func (r *Repository) Insert(build func(id int64) Payment) Payment {
	return r.table.Insert(build)
}

func (r *Repository) Update(id int64, apply func(Payment) Payment) (Payment, bool) {
	return r.table.Update(id, apply)
}
