package schema

import "time"

// Book is the structured result of a generation, persisted for the viewer.
type Book struct {
	Title             string    `json:"title" jsonschema_description:"Cover title of the book"`
	Chapters          []Chapter `json:"chapters" jsonschema_description:"Chapters in reading order"`
	TotalChapters     int       `json:"totalChapters" jsonschema_description:"Number of chapters; always equals the length of chapters"`
	EstimatedReadTime int       `json:"estimatedReadTime" jsonschema_description:"Estimated reading time in minutes at 200 words per minute"`
}

type Chapter struct {
	Number  int    `json:"number" jsonschema_description:"1-based chapter number"`
	Title   string `json:"title" jsonschema_description:"Chapter title"`
	Content string `json:"content" jsonschema_description:"Chapter text"`
}

type Metadata struct {
	BookType    string    `json:"bookType"`
	GeneratedAt time.Time `json:"generatedAt"`
	WordCount   int       `json:"wordCount"`
}

// Result is a book together with the metadata of the call that produced it.
type Result struct {
	Book     Book     `json:"book"`
	Metadata Metadata `json:"metadata"`
}

// GenerateRequest is the body of POST /api/generate-book.
type GenerateRequest struct {
	BookType string            `json:"bookType"`
	Answers  map[string]string `json:"answers"`
}

// GenerateResponse is the success envelope of POST /api/generate-book.
type GenerateResponse struct {
	Success  bool     `json:"success"`
	Book     Book     `json:"book"`
	Metadata Metadata `json:"metadata"`
}

// Valid reports whether the book satisfies its structural invariants: the chapter
// count matches and chapters are numbered 1..n without gaps.
func (b Book) Valid() bool {
	if b.TotalChapters != len(b.Chapters) {
		return false
	}
	for i, ch := range b.Chapters {
		if ch.Number != i+1 {
			return false
		}
	}
	return true
}
