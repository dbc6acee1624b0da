package game

import "encoding/json"

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseEnding
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseEnding:
		return "ending"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes Phase as a string.
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON deserializes Phase from a string.
func (p *Phase) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "active":
		*p = PhaseActive
	case "ending":
		*p = PhaseEnding
	default:
		*p = PhaseIdle
	}
	return nil
}
