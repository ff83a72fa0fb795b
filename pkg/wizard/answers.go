package wizard

import (
	"strings"
)

// MaxPhotoBytes is the largest accepted photo.
const MaxPhotoBytes = 5 << 20

// FileRef describes an uploaded file. Only the reference is kept; the bytes are not
// stored or sent to the model.
type FileRef struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Acceptable reports whether f is an image no larger than MaxPhotoBytes.
func (f FileRef) Acceptable() bool {
	return strings.HasPrefix(f.ContentType, "image/") && f.Size > 0 && f.Size <= MaxPhotoBytes
}

type Answer struct {
	Text  string    `json:"text,omitempty"`
	Files []FileRef `json:"files,omitempty"`
}

func (a Answer) Empty() bool {
	return strings.TrimSpace(a.Text) == "" && len(a.Files) == 0
}

// AnswerSet maps question ids to answers.
type AnswerSet map[string]Answer

// Texts returns the text answers, which is what the generation prompt uses.
func (s AnswerSet) Texts() map[string]string {
	out := make(map[string]string, len(s))
	for id, a := range s {
		if a.Text != "" {
			out[id] = a.Text
		}
	}
	return out
}

func (s AnswerSet) clone() AnswerSet {
	if s == nil {
		return nil
	}
	out := make(AnswerSet, len(s))
	for id, a := range s {
		a.Files = append([]FileRef(nil), a.Files...)
		out[id] = a
	}
	return out
}
