package thr

import (
	"math"
	"sort"
	"time"

	"github.com/moznion/go-optional"
)

const (
	//MinThreshold is the lowest passing fraction any threshold may require
	MinThreshold = 0.51

	//MaxThreshold is the highest passing fraction any threshold may require
	MaxThreshold = 0.90
)

//Model describes the passing fraction a proposal requires as a function of the
//minutes since voting opened. The set is closed: Exponential, Linear, Sigmoid
//and StepFunction.
type Model interface {
	isModel()
}

//Exponential grows the threshold as MinThreshold * (1+Growth)^minutes
type Exponential struct {
	Growth float64
}

//Linear grows the threshold as MinThreshold + Slope * minutes
type Linear struct {
	Slope float64
}

//Sigmoid moves the threshold from MinThreshold to MaxThreshold along a logistic
//curve centered on Midpoint minutes.
type Sigmoid struct {
	Steepness float64
	Midpoint  float64
}

//Step is a single breakpoint: from Minutes onwards the threshold is Value
type Step struct {
	Minutes uint64
	Value   float64
}

//StepFunction holds the threshold at the value of the last breakpoint that was
//reached. The breakpoints don't need to be ordered.
type StepFunction []Step

func (Exponential) isModel()  {}
func (Linear) isModel()       {}
func (Sigmoid) isModel()      {}
func (StepFunction) isModel() {}

//Override returns an emergency override that bypasses any model
func Override(v float64) optional.Option[float64] { return optional.Some(v) }

//NoOverride returns the absence of an emergency override
func NoOverride() optional.Option[float64] { return optional.None[float64]() }

//ElapsedMinutes returns the whole minutes between start and now, never negative
func ElapsedMinutes(start, now time.Time) float64 {
	if now.Before(start) {
		return 0
	}

	return math.Floor(now.Sub(start).Minutes())
}

//At returns the fraction of the votes required to pass at time now for a
//proposal that opened at start. If an override is present the model is not
//evaluated and the override is returned instead. The result is always within
//[MinThreshold, MaxThreshold].
func At(start, now time.Time, m Model, override optional.Option[float64]) float64 {
	if v, err := override.Take(); err == nil {
		return Clamp(v)
	}

	return Clamp(Eval(m, ElapsedMinutes(start, now)))
}

//Eval evaluates model m at the provided elapsed minutes without clamping. A nil
//model holds the threshold at the minimum.
func Eval(m Model, minutes float64) float64 {
	switch m := m.(type) {
	case Exponential:
		return MinThreshold * math.Pow(1+m.Growth, minutes)
	case Linear:
		return MinThreshold + m.Slope*minutes
	case Sigmoid:
		return MinThreshold + (MaxThreshold-MinThreshold)/(1+math.Exp(-m.Steepness*(minutes-m.Midpoint)))
	case StepFunction:
		return m.at(minutes)
	case nil:
		return MinThreshold
	default:
		panic("thr: unsupported model")
	}
}

func (sf StepFunction) at(minutes float64) (v float64) {
	steps := make([]Step, len(sf))
	copy(steps, sf)
	sort.SliceStable(steps, func(i, j int) bool { return steps[i].Minutes < steps[j].Minutes })

	v = MinThreshold
	for _, s := range steps {
		if float64(s.Minutes) <= minutes {
			v = s.Value //last match wins
		}
	}

	return
}

//Clamp returns v bounded to [MinThreshold, MaxThreshold]. Infinities saturate
//at the nearest bound, NaN ends up at the minimum.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < MinThreshold:
		return MinThreshold
	case v > MaxThreshold:
		return MaxThreshold
	default:
		return v
	}
}
