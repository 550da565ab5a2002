package chrono

import "time"

// API is the wall clock used for request timestamps.
//
// note: fault injection point
type API interface {
	Now() time.Time
}

type StandardImpl struct{}

func NewStandardImpl() StandardImpl {
	return StandardImpl{}
}

func (StandardImpl) Now() time.Time {
	return time.Now()
}

// FixedImpl always returns the same instant, it is used to make signatures reproducible.
type FixedImpl struct {
	Instant time.Time
}

func NewFixedImpl(instant time.Time) FixedImpl {
	return FixedImpl{Instant: instant}
}

func (f FixedImpl) Now() time.Time {
	return f.Instant
}
