package hero

import "time"

// State is the phase of the idle-return state machine.
type State int

const (
	// Active means the user is currently engaged with the showcase.
	Active State = iota
	// Waiting means the user has disengaged and the inactivity timer may be running.
	Waiting
	// Returning means the camera is animating back to its home pose.
	Returning
)

func (s State) String() string {
	switch s {
	case Active:
		return "ACTIVE"
	case Waiting:
		return "WAITING"
	case Returning:
		return "RETURNING"
	default:
		return "UNKNOWN"
	}
}

// InteractionState is the hover flag and last-interaction instant shared by the idle-return
// machine and the orbit/zoom controller. It is owned by the frame thread.
type InteractionState struct {
	hovered         bool
	lastInteraction time.Time
}

// NewInteractionState returns an unhovered state whose last interaction is now.
//
// Parameters:
//   - now: the initial interaction instant
//
// Returns:
//   - *InteractionState: the new state
func NewInteractionState(now time.Time) *InteractionState {
	return &InteractionState{lastInteraction: now}
}

// Hovered reports whether the pointer is over the focal node.
func (s *InteractionState) Hovered() bool {
	return s.hovered
}

// LastInteraction returns the instant of the most recent interaction.
func (s *InteractionState) LastInteraction() time.Time {
	return s.lastInteraction
}

// SetHovered writes the hover flag and the interaction instant together.
//
// Parameters:
//   - hovered: the new hover flag
//   - now: the instant of the pointer event
func (s *InteractionState) SetHovered(hovered bool, now time.Time) {
	s.hovered = hovered
	s.Touch(now)
}

// Touch records an interaction at now. The instant never moves backwards.
//
// Parameters:
//   - now: the interaction instant
func (s *InteractionState) Touch(now time.Time) {
	if now.After(s.lastInteraction) {
		s.lastInteraction = now
	}
}

// IdleFor returns how long it has been since the last interaction.
//
// Parameters:
//   - now: the current instant
//
// Returns:
//   - time.Duration: time since the last interaction
func (s *InteractionState) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.lastInteraction)
}
