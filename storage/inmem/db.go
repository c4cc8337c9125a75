// Package inmemdb provides the process-local storage backend. Collections
// live for the life of the process; nothing is persisted across restarts.
package inmemdb

import (
	"sync"

	"github.com/hopenndrive/admin/core/user"
)

type (
	DB struct {
		user *userTable
	}

	userTable struct {
		mutex sync.RWMutex
		table map[string]*user.User
		order []string // insertion order of user IDs
	}
)

func Open() (*DB, error) {
	db := &DB{
		user: &userTable{table: make(map[string]*user.User)},
	}
	return db, nil
}
