// Package store persists the current book of each reader. Every owner has a single
// well-known slot, CurrentBookKey, that is overwritten wholesale on each generation.
package store

import (
	"context"
	"errors"
	"strings"

	"velorabook/pkg/schema"
)

// CurrentBookKey names the slot holding an owner's latest book.
const CurrentBookKey = "currentBook"

var (
	ErrNotFound     = errors.New("book not found")
	ErrCorrupt      = errors.New("stored book is corrupt")
	ErrInvalidOwner = errors.New("invalid owner")
)

type Store interface {
	Save(ctx context.Context, owner string, book schema.Book) error
	Load(ctx context.Context, owner string) (schema.Book, error)
}

func checkOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return ErrInvalidOwner
	}
	return nil
}
