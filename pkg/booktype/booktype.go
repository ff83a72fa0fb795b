// Package booktype holds the closed catalog of book types: their questionnaires,
// prices, book titles and chapter titles.
package booktype

import (
	"fmt"
	"strings"
)

// Kind is a closed enumeration of supported book types. Unknown is the zero value and
// marks any tag outside the catalog.
type Kind uint8

const (
	Unknown Kind = iota
	Romantic
	Family
	Friendship
)

// Kinds lists every supported kind in catalog order.
var Kinds = []Kind{Romantic, Family, Friendship}

func (k Kind) String() string {
	switch k {
	case Romantic:
		return "romantic"
	case Family:
		return "family"
	case Friendship:
		return "friendship"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Parse maps a book-type tag onto a Kind. Tags are matched case-insensitively after
// trimming; anything else is Unknown.
func Parse(tag string) Kind {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "romantic":
		return Romantic
	case "family":
		return Family
	case "friendship":
		return Friendship
	default:
		return Unknown
	}
}

// Input is the kind of value a question expects.
type Input string

const (
	InputLine  Input = "text"
	InputText  Input = "textarea"
	InputFiles Input = "file"
)

type Question struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Input       Input  `json:"type"`
	Required    bool   `json:"required"`
}

// Definition is the static description of one book type.
type Definition struct {
	Kind          Kind       `json:"-"`
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Price         string     `json:"price"`
	BookTitle     string     `json:"bookTitle"`
	ChapterTitles []string   `json:"chapterTitles"`
	Questions     []Question `json:"questions"`
}

// GenericBookTitle is used for tags outside the catalog.
const GenericBookTitle = "Персональная Книга"

// Lookup returns the definition of k. The boolean is false only for Unknown.
func Lookup(k Kind) (Definition, bool) {
	switch k {
	case Romantic:
		return romantic, true
	case Family:
		return family, true
	case Friendship:
		return friendship, true
	case Unknown:
		return Definition{}, false
	}
	return Definition{}, false
}

// All returns the catalog in display order.
func All() []Definition {
	out := make([]Definition, 0, len(Kinds))
	for _, k := range Kinds {
		def, _ := Lookup(k)
		out = append(out, def)
	}
	return out
}

// BookTitle returns the cover title for k, or GenericBookTitle for Unknown.
func BookTitle(k Kind) string {
	if def, ok := Lookup(k); ok {
		return def.BookTitle
	}
	return GenericBookTitle
}

// ChapterTitle returns the title of the 1-based chapter n. The second result reports
// whether the title came from the type's list; when it is false the title is the
// generic "Глава n" label.
func ChapterTitle(k Kind, n int) (string, bool) {
	if def, ok := Lookup(k); ok && n >= 1 && n <= len(def.ChapterTitles) {
		return def.ChapterTitles[n-1], true
	}
	return fmt.Sprintf("Глава %d", n), false
}

// Question returns the question with the given id.
func (d Definition) Question(id string) (Question, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
