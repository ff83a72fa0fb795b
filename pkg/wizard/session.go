// Package wizard implements the questionnaire state machine:
//
//	SelectType -> Question(1..N) -> Generating -> Done
//
// A failed generation returns to Question(N) with the answers intact.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"velorabook/pkg/booktype"
	"velorabook/pkg/gateway"
	"velorabook/pkg/schema"
	"velorabook/pkg/store"
)

// Generator produces a book from a book-type tag and text answers.
type Generator interface {
	Generate(ctx context.Context, bookType string, answers map[string]string) (schema.Result, error)
}

type Session struct {
	ID string

	gen     Generator
	store   store.Store
	timeout time.Duration
	now     func() time.Time

	// generating is the per-session in-flight flag; it is set before the lock is
	// released for the model call and cleared when the call returns.
	generating atomic.Bool

	mu        sync.Mutex
	state     State
	def       booktype.Definition
	step      int // 1-based question index while in StateQuestion or StateGenerating
	answers   AnswerSet
	book      *schema.Book
	message   string
	updatedAt time.Time
}

// Snapshot is a read-only copy of a session.
type Snapshot struct {
	ID         string             `json:"id"`
	State      State              `json:"state"`
	BookType   string             `json:"bookType,omitempty"`
	Step       int                `json:"step"`
	TotalSteps int                `json:"totalSteps"`
	Question   *booktype.Question `json:"question,omitempty"`
	Answers    AnswerSet          `json:"answers,omitempty"`
	Error      string             `json:"error,omitempty"`
	Book       *schema.Book       `json:"book,omitempty"`
}

func newSession(id string, gen Generator, st store.Store, timeout time.Duration, now func() time.Time) *Session {
	return &Session{
		ID:        id,
		gen:       gen,
		store:     st,
		timeout:   timeout,
		now:       now,
		state:     StateSelectType,
		updatedAt: now(),
	}
}

// SelectType starts the questionnaire for tag, discarding any previous answers.
func (s *Session) SelectType(tag string) error {
	def, ok := booktype.Lookup(booktype.Parse(tag))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBookType, tag)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateGenerating {
		return ErrGenerationInFlight
	}
	s.def = def
	s.state = StateQuestion
	s.step = 1
	s.answers = make(AnswerSet, len(def.Questions))
	s.book = nil
	s.message = ""
	s.touch()
	return nil
}

// Answer records a text answer for one of the selected type's questions.
func (s *Session) Answer(questionID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.questionLocked(questionID)
	if err != nil {
		return err
	}
	if q.Input == booktype.InputFiles {
		return fmt.Errorf("%w: %s expects files", ErrWrongInput, q.ID)
	}
	s.answers[q.ID] = Answer{Text: text}
	s.touch()
	return nil
}

// AttachFiles replaces the file set of a file question with the acceptable subset of
// files and returns that subset. An empty subset clears the answer.
func (s *Session) AttachFiles(questionID string, files []FileRef) ([]FileRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, err := s.questionLocked(questionID)
	if err != nil {
		return nil, err
	}
	if q.Input != booktype.InputFiles {
		return nil, fmt.Errorf("%w: %s expects text", ErrWrongInput, q.ID)
	}

	var accepted []FileRef
	for _, f := range files {
		if f.Acceptable() {
			accepted = append(accepted, f)
		} else {
			log.Debug("rejected upload", "session", s.ID, "question", q.ID, "file", f.Name, "type", f.ContentType, "size", f.Size)
		}
	}
	if len(accepted) == 0 {
		delete(s.answers, q.ID)
	} else {
		s.answers[q.ID] = Answer{Files: accepted}
	}
	s.touch()
	return accepted, nil
}

func (s *Session) questionLocked(id string) (booktype.Question, error) {
	switch s.state {
	case StateGenerating:
		return booktype.Question{}, ErrGenerationInFlight
	case StateSelectType:
		return booktype.Question{}, ErrNoBookType
	case StateDone:
		return booktype.Question{}, ErrNotAtQuestion
	case StateQuestion:
	}
	q, ok := s.def.Question(id)
	if !ok {
		return booktype.Question{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return q, nil
}

// Prev moves back one question. It is refused on the first question.
func (s *Session) Prev() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateGenerating:
		return ErrGenerationInFlight
	case StateSelectType:
		return ErrNoBookType
	case StateDone:
		return ErrNotAtQuestion
	case StateQuestion:
	}
	if s.step <= 1 {
		return ErrAtFirstQuestion
	}
	s.step--
	s.message = ""
	s.touch()
	return nil
}

// Next advances past the current question. On the last question it generates the
// book, waiting at most the session timeout; on failure the session returns to the
// last question with its answers and a user-facing message, and the returned error
// wraps ErrGeneration together with the cause.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateGenerating:
		s.mu.Unlock()
		return ErrGenerationInFlight
	case StateSelectType:
		s.mu.Unlock()
		return ErrNoBookType
	case StateDone:
		s.mu.Unlock()
		return ErrNotAtQuestion
	case StateQuestion:
	}

	q := s.def.Questions[s.step-1]
	if q.Required && s.answers[q.ID].Empty() {
		s.message = MsgAnswerRequired
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAnswerRequired, q.ID)
	}
	s.message = ""
	s.touch()

	if s.step < len(s.def.Questions) {
		s.step++
		s.mu.Unlock()
		return nil
	}

	for _, q := range s.def.Questions {
		if q.Required && s.answers[q.ID].Empty() {
			s.message = MsgAnswerRequired
			s.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrAnswerRequired, q.ID)
		}
	}
	if !s.generating.CompareAndSwap(false, true) {
		s.mu.Unlock()
		return ErrGenerationInFlight
	}
	s.state = StateGenerating
	bookType := s.def.ID
	texts := s.answers.Texts()
	s.mu.Unlock()

	book, err := s.generate(ctx, bookType, texts)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.generating.Store(false)
	s.touch()
	if err != nil {
		s.state = StateQuestion
		s.message = MsgGenerationFailed
		if errors.Is(err, gateway.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			s.message = MsgTimeout
		}
		log.Warn("wizard generation failed", "session", s.ID, "bookType", bookType, "error", err)
		return fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	s.state = StateDone
	s.book = &book
	s.answers = nil
	return nil
}

func (s *Session) generate(ctx context.Context, bookType string, answers map[string]string) (schema.Book, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	res, err := s.gen.Generate(ctx, bookType, answers)
	if err != nil {
		return schema.Book{}, err
	}
	if err := s.store.Save(ctx, s.ID, res.Book); err != nil {
		return schema.Book{}, err
	}
	log.Info("wizard book ready", "session", s.ID, "bookType", bookType, "chapters", res.Book.TotalChapters)
	return res.Book, nil
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:      s.ID,
		State:   s.state,
		Answers: s.answers.clone(),
		Error:   s.message,
	}
	if s.state == StateSelectType {
		return snap
	}
	snap.BookType = s.def.ID
	snap.TotalSteps = len(s.def.Questions)
	if s.state == StateQuestion || s.state == StateGenerating {
		snap.Step = s.step
		q := s.def.Questions[s.step-1]
		snap.Question = &q
	}
	if s.book != nil {
		b := *s.book
		snap.Book = &b
	}
	return snap
}

// Generating reports whether a generation call is in flight.
func (s *Session) Generating() bool {
	return s.generating.Load()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

func (s *Session) touch() {
	s.updatedAt = s.now()
}
