package wizard

import "errors"

var (
	ErrUnknownBookType    = errors.New("unknown book type")
	ErrUnknownQuestion    = errors.New("unknown question")
	ErrWrongInput         = errors.New("question does not take this kind of answer")
	ErrNoBookType         = errors.New("no book type selected")
	ErrAnswerRequired     = errors.New("required answer missing")
	ErrAtFirstQuestion    = errors.New("already at the first question")
	ErrNotAtQuestion      = errors.New("not at a question step")
	ErrGenerationInFlight = errors.New("generation already in progress")
	ErrGeneration         = errors.New("book generation failed")
)

// User-facing messages carried in snapshots.
const (
	MsgAnswerRequired   = "Пожалуйста, заполните все обязательные поля"
	MsgGenerationFailed = "Произошла ошибка при генерации книги"
	MsgTimeout          = "Генерация заняла слишком много времени. Попробуйте еще раз."
)
