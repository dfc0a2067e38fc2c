package score

import "iter"

// RoutineFunc is a composer written as straight-line code. Each call to yield
// suspends the body for delta seconds; when yield returns false the body must
// return. Returning ends the composer, and a non-nil error ends the whole
// composition.
type RoutineFunc func(s *Score, yield func(delta float64) bool) error

type routine struct {
	body RoutineFunc
	next func() (float64, bool)
	stop func()
	err  error
}

// Routine adapts body into a Composer.
func Routine(body RoutineFunc) Composer {
	return &routine{body: body}
}

func (r *routine) Next(s *Score) (float64, error) {
	if r.next == nil {
		r.next, r.stop = iter.Pull(func(yield func(float64) bool) {
			r.err = r.body(s, yield)
		})
	}
	delta, ok := r.next()
	if !ok {
		return -1, r.err
	}
	return delta, nil
}

// Stop releases a body that is still suspended.
func (r *routine) Stop() {
	if r.stop != nil {
		r.stop()
	}
}
