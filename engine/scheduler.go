package engine

// Scheduler is the loop's single "next step is scheduled" flag. The display
// callback calls Fire once per refresh; a step only runs when one is
// scheduled, so repeated Schedule calls can never stack a second loop.
type Scheduler struct {
	scheduled bool
	gen       int
	steps     int
}

// Schedule arms the next step. Calling it while already armed does nothing.
func (s *Scheduler) Schedule() {
	s.scheduled = true
}

// Cancel disarms the loop, e.g. on teardown or before an intentional restart
func (s *Scheduler) Cancel() {
	s.scheduled = false
	s.gen++
}

// Scheduled reports whether a step will run on the next Fire
func (s *Scheduler) Scheduled() bool {
	return s.scheduled
}

// Fire runs at most one step. The loop re-arms itself only after the step has
// completed, and only if the step did not cancel or restart it.
func (s *Scheduler) Fire(step func()) bool {
	if !s.scheduled {
		return false
	}
	s.scheduled = false
	gen := s.gen

	step()
	s.steps++

	if s.gen == gen {
		s.scheduled = true
	}
	return true
}

// Steps returns how many steps have run
func (s *Scheduler) Steps() int {
	return s.steps
}
