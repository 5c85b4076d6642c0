package render

import (
	"errors"
	"fmt"
	"sort"
)

var ErrMissingFrames = errors.New("render: missing frames")

// Library stores frame sets keyed by archetype and status.
type Library struct {
	sets map[string]map[string]*FrameSet
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{sets: make(map[string]map[string]*FrameSet)}
}

// Register adds or replaces the frames for archetype/status.
func (l *Library) Register(archetype, status string, frames *FrameSet) {
	if l == nil || archetype == "" || status == "" || frames == nil {
		return
	}
	if l.sets == nil {
		l.sets = make(map[string]map[string]*FrameSet)
	}
	byStatus, ok := l.sets[archetype]
	if !ok {
		byStatus = make(map[string]*FrameSet)
		l.sets[archetype] = byStatus
	}
	byStatus[status] = frames
}

// Lookup returns the frames for archetype/status.
func (l *Library) Lookup(archetype, status string) (*FrameSet, bool) {
	if l == nil {
		return nil, false
	}
	fs, ok := l.sets[archetype][status]
	return fs, ok && fs != nil
}

// Archetype returns every status registered for archetype.
func (l *Library) Archetype(archetype string) map[string]*FrameSet {
	if l == nil {
		return nil
	}
	return l.sets[archetype]
}

// Statuses returns the registered statuses of archetype in sorted order.
func (l *Library) Statuses(archetype string) []string {
	byStatus := l.Archetype(archetype)
	out := make([]string, 0, len(byStatus))
	for status := range byStatus {
		out = append(out, status)
	}
	sort.Strings(out)
	return out
}

// Require checks that every status has at least one frame.
func (l *Library) Require(archetype string, statuses ...string) error {
	for _, status := range statuses {
		fs, ok := l.Lookup(archetype, status)
		if !ok || fs.Len() == 0 {
			return fmt.Errorf("%w: %s/%s", ErrMissingFrames, archetype, status)
		}
	}
	return nil
}
