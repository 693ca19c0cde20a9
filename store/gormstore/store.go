// Package gormstore is the durable Store implementation. Every operation
// translates to a query against the relational database and hands back a
// plain record copy.
package gormstore

import (
	"errors"
	"strings"

	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store"

	"gorm.io/gorm"
)

type Store struct {
	db    *gorm.DB
	argon *security.ArgonHash
}

// New wires a Store to a live database handle. A nil handle is an error,
// there is no lazy connecting.
func New(db *gorm.DB, argon *security.ArgonHash) (*Store, error) {
	if db == nil {
		return nil, errors.New("gormstore requires a database handle")
	}

	if argon == nil {
		argon = security.New()
	}

	return &Store{db: db, argon: argon}, nil
}

// translate maps driver-level failures onto the store's error taxonomy so
// handlers can tell "nothing there" from "write rejected"
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrConflict
	}

	// SQLite and Postgres phrase constraint violations differently and
	// not every driver maps them onto gorm.ErrDuplicatedKey
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") {
		return store.ErrConflict
	}

	return err
}
