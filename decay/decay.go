package decay

import (
	"math"
	"time"
)

//FloorFraction is the part of the base weight that a vote always keeps, no
//matter how much time has passed.
const FloorFraction = 0.10

//Model describes how a vote's weight diminishes with the time since it was
//cast. The set of models is closed: Linear, Exponential and Stepped.
type Model interface {
	isModel()
}

//Linear decays the weight with Rate per elapsed second
type Linear struct {
	Rate float64
}

//Exponential decays the weight with e^(-Rate * elapsed seconds)
type Exponential struct {
	Rate float64
}

//Stepped decays the weight with Factor for every full Interval that passed
type Stepped struct {
	Interval time.Duration
	Factor   float64
}

func (Linear) isModel()      {}
func (Exponential) isModel() {}
func (Stepped) isModel()     {}

//Elapsed returns the seconds between start and now, a now before start counts as
//no time passing at all.
func Elapsed(start, now time.Time) (secs float64) {
	if now.Before(start) {
		return 0
	}

	return now.Sub(start).Seconds()
}

//Weight returns the decayed weight of base after the time between start and
//now, as described by model m. The result is never lower then FloorFraction
//of base. A nil model doesn't decay.
func Weight(base float64, start, now time.Time, m Model) (w float64) {
	elapsed := Elapsed(start, now)
	if elapsed == 0 {
		return base //no time, no decay
	}

	switch m := m.(type) {
	case Linear:
		w = base * (1 - m.Rate*elapsed)
	case Exponential:
		w = base * math.Exp(-m.Rate*elapsed)
	case Stepped:
		w = base * (1 - m.Factor*Steps(elapsed, m.Interval))
	case nil:
		w = base
	default:
		panic("decay: unsupported model")
	}

	return Floor(base, w)
}

//Steps returns the number of full intervals in elapsed seconds. A non-positive
//interval never steps.
func Steps(elapsed float64, interval time.Duration) float64 {
	if interval <= 0 {
		return 0
	}

	return math.Floor(elapsed / interval.Seconds())
}

//Floor clamps w to at least FloorFraction of base, non-finite weights saturate
//at the floor.
func Floor(base, w float64) float64 {
	min := base * FloorFraction
	if math.IsNaN(w) || math.IsInf(w, 0) || w < min {
		return min
	}

	return w
}
