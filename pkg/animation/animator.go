package animation

// Animator interpolates a single float property between two values.
//
// Apply writes the interpolated value through Set. The zero Curve means
// linear; gesture-scrubbed animators should stay linear so the property
// tracks the finger.
type Animator struct {
	// Set writes the current value to the animated property.
	Set func(float64)
	// From is the value at fraction 0.
	From float64
	// To is the value at fraction 1.
	To float64
	// Curve transforms the fraction before interpolation (optional).
	Curve func(float64) float64
}

// OfFloat creates a linear animator for a float property setter.
func OfFloat(set func(float64), from, to float64) *Animator {
	return &Animator{Set: set, From: from, To: to, Curve: Linear}
}

// Apply evaluates the animator at fraction t in [0, 1] and writes the value.
func (a *Animator) Apply(t float64) {
	if a.Set == nil {
		return
	}
	eased := t
	if a.Curve != nil {
		eased = a.Curve(t)
	}
	a.Set(a.From + (a.To-a.From)*eased)
}

// Timeline is a composed set of animators played together over one
// duration. It is the unit a [PlaybackController] scrubs and commits.
type Timeline struct {
	animators []*Animator
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Play adds animators to the timeline. All animators in a timeline share
// the same clock and fraction.
func (tl *Timeline) Play(animators ...*Animator) {
	for _, a := range animators {
		if a != nil {
			tl.animators = append(tl.animators, a)
		}
	}
}

// IsEmpty returns true if the timeline has no animators.
func (tl *Timeline) IsEmpty() bool {
	return len(tl.animators) == 0
}

// Apply evaluates every animator at fraction t.
func (tl *Timeline) Apply(t float64) {
	for _, a := range tl.animators {
		a.Apply(t)
	}
}
