package components

import "github.com/yohamta/donburi"

// Phase is the per-level state machine: Loading -> Playing -> Complete.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseComplete:
		return "complete"
	}
	return "unknown"
}

type SessionData struct {
	Phase Phase
	Title string
}

var Session = donburi.NewComponentType[SessionData]()
