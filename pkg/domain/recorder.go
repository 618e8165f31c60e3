package domain

// Recorder accumulates steps during a solve pass. Solvers append through it
// so every emitted step carries a consistent copy of the running counters.
type Recorder struct {
	steps []Step
	stats Stats
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Stats returns a pointer to the running counters for solvers to increment.
func (r *Recorder) Stats() *Stats {
	return &r.stats
}

// Emit appends a step, stamping it with the current counter values.
func (r *Recorder) Emit(s Step) {
	s.Stats = r.stats
	r.steps = append(r.steps, s)
}

// Steps returns the accumulated sequence.
func (r *Recorder) Steps() []Step {
	return r.steps
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}
