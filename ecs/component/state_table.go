package component

import "fmt"

// Repeat says whether a status loops or plays once.
type Repeat int

const (
	RepeatCyclic Repeat = iota
	RepeatOnce
)

func (r Repeat) String() string {
	if r == RepeatOnce {
		return "once"
	}
	return "cyclic"
}

// ParseRepeat accepts "once" or "cyclic".
func ParseRepeat(s string) (Repeat, error) {
	switch s {
	case "once":
		return RepeatOnce, nil
	case "cyclic", "":
		return RepeatCyclic, nil
	default:
		return RepeatCyclic, fmt.Errorf("unknown repeat mode %q", s)
	}
}

// StateSpec describes one status of an archetype.
type StateSpec struct {
	Repeat        Repeat
	Interruptible bool
	// Next is entered after a once status completes.
	Next string
	// Terminal statuses accept no further transitions.
	Terminal bool
}

// StateTable maps status names to their specs. It is shared read-only by
// every entity of an archetype.
type StateTable map[string]StateSpec
