package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Step advances the clock by dt seconds, runs every system once and then
// destroys the entities queued during the frame.
func (s *Scheduler) Step(w *World, dt float64) {
	if s == nil || w == nil {
		return
	}
	w.Clock().Advance(dt)
	for _, system := range s.systems {
		system.Update(w)
	}
	Flush(w)
}

func (s *Scheduler) Systems() []System {
	if s == nil {
		return nil
	}
	return append([]System(nil), s.systems...)
}
