package transactions

import "github.com/stockpilot-erp/stockpilot-erp/internal/platform/memdb"

// Repository stores transaction headers and lines in memory.
type Repository struct {
	headers *memdb.Table[Transaction]
	items   *memdb.Table[TransactionItem]
}

func NewRepository() *Repository {
	return &Repository{
		headers: memdb.NewTable[Transaction](),
		items:   memdb.NewTable[TransactionItem](),
	}
}

func (r *Repository) List() []Transaction {
	return r.headers.List()
}

func (r *Repository) Get(id int64) (Transaction, bool) {
	return r.headers.Get(id)
}

func (r *Repository) Insert(build func(id int64) Transaction) Transaction {
	return r.headers.Insert(build)
}

func (r *Repository) Update(id int64, apply func(Transaction) Transaction) (Transaction, bool) {
	return r.headers.Update(id, apply)
}

func (r *Repository) ListItems(transactionID int64) []TransactionItem {
	return r.items.Filter(func(it TransactionItem) bool {
		return it.TransactionID == transactionID
	})
}

func (r *Repository) InsertItem(build func(id int64) TransactionItem) TransactionItem {
	return r.items.Insert(build)
}
