package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"velorabook/pkg/schema"
	"velorabook/pkg/utils"
)

// FileStore keeps each owner's book as <dir>/<owner>/currentBook.json.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(owner string) string {
	return filepath.Join(s.dir, utils.SanitizeFilename(owner), CurrentBookKey+".json")
}

func (s *FileStore) Save(_ context.Context, owner string, book schema.Book) error {
	if err := checkOwner(owner); err != nil {
		return err
	}
	if err := utils.Save(s.path(owner), book); err != nil {
		return fmt.Errorf("save book for %s: %w", owner, err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context, owner string) (schema.Book, error) {
	if err := checkOwner(owner); err != nil {
		return schema.Book{}, err
	}
	book, err := utils.Load[schema.Book](s.path(owner))
	switch {
	case err == nil:
		return book, nil
	case errors.Is(err, fs.ErrNotExist):
		return schema.Book{}, ErrNotFound
	default:
		return schema.Book{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
}
