package structure

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructureRomanticTitles(t *testing.T) {
	raw := "Глава 1\n" + strings.Repeat("x", 60) + "\nГлава 2\n" + strings.Repeat("y", 60)

	book := Structure(raw, "romantic")

	require.Len(t, book.Chapters, 2)
	assert.Equal(t, 2, book.TotalChapters)
	assert.Equal(t, "Наша История Любви", book.Title)
	assert.Equal(t, "Наша Встреча", book.Chapters[0].Title)
	assert.Equal(t, "Первые Чувства", book.Chapters[1].Title)
	assert.Equal(t, strings.Repeat("x", 60), book.Chapters[0].Content)
	assert.Equal(t, strings.Repeat("y", 60), book.Chapters[1].Content)
}

func TestStructureMarkerVariants(t *testing.T) {
	body := strings.Repeat("слово ", 20)
	raw := strings.Join([]string{
		"ГЛАВА 1", body,
		"глава 2.", body,
		"Chapter 3", body,
		"4.", body,
	}, "\n")

	book := Structure(raw, "family")
	require.Len(t, book.Chapters, 4)
	for i, ch := range book.Chapters {
		assert.Equal(t, i+1, ch.Number)
		assert.Equal(t, strings.TrimSpace(body), ch.Content)
	}
	assert.Equal(t, "Семейные Ценности", book.Chapters[3].Title)
}

func TestStructureDropsShortFragments(t *testing.T) {
	raw := "Вступление\nГлава 1\n" + strings.Repeat("a", 51) + "\nГлава 2\n" + strings.Repeat("b", 50) + "\nГлава 3\n" + strings.Repeat("c", 80)

	book := Structure(raw, "friendship")
	require.Len(t, book.Chapters, 2)
	assert.Equal(t, []int{1, 2}, []int{book.Chapters[0].Number, book.Chapters[1].Number})
	assert.Equal(t, strings.Repeat("c", 80), book.Chapters[1].Content)
	assert.Equal(t, "Наши Приключения", book.Chapters[1].Title)
}

func TestStructureFallbackTitles(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&sb, "Глава %d\n%s\n", i, strings.Repeat("текст ", 15))
	}

	book := Structure(sb.String(), "friendship")
	require.Len(t, book.Chapters, 7)
	assert.Equal(t, "Друзья Навсегда", book.Chapters[4].Title)
	assert.Equal(t, "Глава 6", book.Chapters[5].Title)
	assert.Equal(t, "Глава 7", book.Chapters[6].Title)

	unknown := Structure(sb.String(), "birthday")
	assert.Equal(t, "Персональная Книга", unknown.Title)
	assert.Equal(t, "Глава 1", unknown.Chapters[0].Title)
}

func TestStructureInvariants(t *testing.T) {
	inputs := []string{
		"",
		"short",
		strings.Repeat("без маркеров ", 40),
		"1. " + strings.Repeat("a", 100) + "\n2. " + strings.Repeat("b", 10) + "\n3. " + strings.Repeat("c", 100),
		"Глава 1 Глава 2 Глава 3",
	}
	for _, raw := range inputs {
		book := Structure(raw, "romantic")
		assert.Equal(t, len(book.Chapters), book.TotalChapters)
		assert.True(t, book.Valid(), "input %q", raw)
	}
}

func TestStructureZeroChapters(t *testing.T) {
	book := Structure("Глава 1\nкоротко\nГлава 2\nтоже", "romantic")
	assert.Empty(t, book.Chapters)
	assert.Equal(t, 0, book.TotalChapters)
}

func TestStructureNoMarkersKeepsWholeText(t *testing.T) {
	raw := strings.Repeat("история ", 30)
	book := Structure(raw, "family")
	require.Len(t, book.Chapters, 1)
	assert.Equal(t, "Начало Истории", book.Chapters[0].Title)
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 5, ReadTime(1000))
	assert.Equal(t, 1, ReadTime(1))
	assert.Equal(t, 0, ReadTime(0))
	assert.Equal(t, 2, ReadTime(201))

	raw := strings.TrimSpace(strings.Repeat("w ", 1000))
	assert.Equal(t, 1000, WordCount(raw))
	assert.Equal(t, 5, Structure(raw, "romantic").EstimatedReadTime)
	assert.Equal(t, 0, Structure("", "romantic").EstimatedReadTime)
	assert.Equal(t, 1, Structure("одно", "romantic").EstimatedReadTime)
}
