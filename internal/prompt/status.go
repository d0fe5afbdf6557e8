package prompt

import "github.com/kobzarvs/qprompt/internal/styled"

// Status is the lifecycle of a prompt session.
type Status int

const (
	StatusPending Status = iota
	StatusAborted
	StatusDone
)

// IsFinished reports whether the session has ended, successfully or not.
func (s Status) IsFinished() bool {
	return s == StatusDone || s == StatusAborted
}

func (s Status) String() string {
	switch s {
	case StatusAborted:
		return "aborted"
	case StatusDone:
		return "done"
	default:
		return "pending"
	}
}

// Symbol returns the glyph drawn in front of the label.
func (s Status) Symbol(theme Theme) styled.Run {
	switch s {
	case StatusAborted:
		return styled.NewRun("✖", theme.Aborted)
	case StatusDone:
		return styled.NewRun("✔", theme.Done)
	default:
		return styled.NewRun("?", theme.Pending)
	}
}
