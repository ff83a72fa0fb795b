package wizard

import "fmt"

type State uint8

const (
	StateSelectType State = iota
	StateQuestion
	StateGenerating
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSelectType:
		return "select_type"
	case StateQuestion:
		return "question"
	case StateGenerating:
		return "generating"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
