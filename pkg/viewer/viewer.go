// Package viewer pages through a persisted book: Cover -> Contents -> Chapter(k).
package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"velorabook/pkg/schema"
	"velorabook/pkg/store"
)

type View uint8

const (
	ViewCover View = iota
	ViewContents
	ViewChapter
)

func (v View) String() string {
	switch v {
	case ViewCover:
		return "cover"
	case ViewContents:
		return "contents"
	case ViewChapter:
		return "chapter"
	}
	return fmt.Sprintf("View(%d)", uint8(v))
}

func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Placeholder is shown when the owner has no readable book.
func Placeholder() schema.Book {
	return schema.Book{
		Title: "Демо Книга",
		Chapters: []schema.Chapter{{
			Number:  1,
			Title:   "Демо Глава",
			Content: "Это демонстрационная книга. Пожалуйста, создайте новую книгу через опросник для получения персонализированного контента.",
		}},
		TotalChapters:     1,
		EstimatedReadTime: 2,
	}
}

// Viewer holds one loaded book and the reader's position in it. The book always has at
// least one chapter.
type Viewer struct {
	mu          sync.Mutex
	book        schema.Book
	placeholder bool
	view        View
	chapter     int // 0-based
}

// State is a read-only copy of the viewer position.
type State struct {
	View        View            `json:"view"`
	Chapter     int             `json:"chapter"`
	Current     *schema.Chapter `json:"current,omitempty"`
	Placeholder bool            `json:"placeholder"`
	Book        schema.Book     `json:"book"`
}

// Open loads the owner's current book once. A missing or unreadable document, or one
// without chapters, yields the placeholder; the failure is logged and not returned.
func Open(ctx context.Context, st store.Store, owner string) *Viewer {
	book, err := st.Load(ctx, owner)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Info("no saved book, showing placeholder", "owner", owner)
		return New(Placeholder())
	case err != nil:
		log.Error("failed to load book, showing placeholder", "owner", owner, "error", err)
		return New(Placeholder())
	}
	return New(book)
}

// New returns a viewer on the cover of book, or of the placeholder if book has no
// chapters.
func New(book schema.Book) *Viewer {
	if len(book.Chapters) == 0 {
		log.Warn("book has no chapters, showing placeholder", "title", book.Title)
		return &Viewer{book: Placeholder(), placeholder: true}
	}
	book.TotalChapters = len(book.Chapters)
	return &Viewer{book: book, placeholder: isPlaceholder(book)}
}

func isPlaceholder(b schema.Book) bool {
	p := Placeholder()
	return b.Title == p.Title && len(b.Chapters) == 1 && b.Chapters[0] == p.Chapters[0]
}

func (v *Viewer) ShowCover() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view = ViewCover
	return v.stateLocked()
}

func (v *Viewer) ShowContents() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.view = ViewContents
	return v.stateLocked()
}

// GoTo opens chapter k (0-based), clamped to the book.
func (v *Viewer) GoTo(k int) State {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.chapter = max(0, min(k, len(v.book.Chapters)-1))
	v.view = ViewChapter
	return v.stateLocked()
}

// Next opens the following chapter; on the last chapter it stays put.
func (v *Viewer) Next() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.view == ViewChapter && v.chapter < len(v.book.Chapters)-1 {
		v.chapter++
	}
	v.view = ViewChapter
	return v.stateLocked()
}

// Prev opens the preceding chapter; on the first chapter it stays put.
func (v *Viewer) Prev() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.view == ViewChapter && v.chapter > 0 {
		v.chapter--
	}
	v.view = ViewChapter
	return v.stateLocked()
}

func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stateLocked()
}

func (v *Viewer) stateLocked() State {
	s := State{
		View:        v.view,
		Chapter:     v.chapter,
		Placeholder: v.placeholder,
		Book:        v.book,
	}
	if v.view == ViewChapter {
		ch := v.book.Chapters[v.chapter]
		s.Current = &ch
	}
	return s
}
