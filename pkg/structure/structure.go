// Package structure splits raw model output into a Book.
package structure

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"velorabook/pkg/booktype"
	"velorabook/pkg/schema"
)

// WordsPerMinute is the reading speed used for EstimatedReadTime.
const WordsPerMinute = 200

// fragments at or below this many runes (after trimming) are not chapters
const minFragmentRunes = 50

// A chapter marker is a chapter word followed by a numeral, or a numbered line such as
// "3." at the start of a line.
var markerRX = regexp.MustCompile(`(?im)(?:глава|chapter)\s*\d+\.?|^[ \t]*\d+\.`)

// Structure partitions raw into chapters for the given book-type tag. Text before the
// first marker counts as a fragment like any other. The result may have zero chapters.
func Structure(raw, tag string) schema.Book {
	kind := booktype.Parse(tag)

	var chapters []schema.Chapter
	for _, frag := range markerRX.Split(raw, -1) {
		frag = strings.TrimSpace(frag)
		if utf8.RuneCountInString(frag) <= minFragmentRunes {
			continue
		}
		n := len(chapters) + 1
		title, listed := booktype.ChapterTitle(kind, n)
		if !listed {
			log.Debug("chapter title fallback", "bookType", tag, "chapter", n)
		}
		chapters = append(chapters, schema.Chapter{
			Number:  n,
			Title:   title,
			Content: frag,
		})
	}

	return schema.Book{
		Title:             booktype.BookTitle(kind),
		Chapters:          chapters,
		TotalChapters:     len(chapters),
		EstimatedReadTime: ReadTime(WordCount(raw)),
	}
}

// WordCount counts whitespace-separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadTime returns ceil(words / WordsPerMinute).
func ReadTime(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
