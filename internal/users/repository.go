package users

import "github.com/stockpilot-erp/stockpilot-erp/internal/platform/memdb"

// Repository stores users in memory.
type Repository struct {
	table *memdb.Table[User]
}

func NewRepository() *Repository {
	return &Repository{table: memdb.NewTable[User]()}
}

func (r *Repository) List() []User {
	return r.table.List()
}

func (r *Repository) Get(id int64) (User, bool) {
	return r.table.Get(id)
}

func (r *Repository) FindByUsername(username string) (User, bool) {
	return r.table.Find(func(u User) bool { return u.Username == username })
}

func (r *Repository) Insert(build func(id int64) User) User {
	return r.table.Insert(build)
}
