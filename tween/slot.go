package tween

// Slot holds at most one running tween; starting a new one kills the previous (last writer wins)
type Slot struct {
	cur *Tween
}

// Start installs tw, killing any tween already in the slot
func (s *Slot) Start(tw *Tween) *Tween {
	s.Kill()
	s.cur = tw
	return tw
}

// Kill stops the current tween without completing it
func (s *Slot) Kill() {
	if s.cur != nil {
		s.cur.Kill()
		s.cur = nil
	}
}

// Step advances the current tween; a completion callback may install a successor
func (s *Slot) Step(dt float64) {
	tw := s.cur
	if tw == nil {
		return
	}
	if tw.Step(dt) && s.cur == tw {
		s.cur = nil
	}
}

// Active reports whether a tween is running
func (s *Slot) Active() bool {
	return s.cur != nil && s.cur.Active()
}

// Current returns the running tween or nil
func (s *Slot) Current() *Tween {
	return s.cur
}
