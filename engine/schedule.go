package engine

import (
	"math"
	"time"

	"github.com/advanderveer/decayvote/thr"
	"github.com/moznion/go-optional"
)

//Schedule determines how the required passing fraction progresses while a
//proposal is open. ModelSchedule and ProfileSchedule are alternatives.
type Schedule interface {
	Required(start, now time.Time, participation float64) float64
}

//ModelSchedule follows an explicit threshold model, unless an emergency
//override is present.
type ModelSchedule struct {
	Model    thr.Model
	Override optional.Option[float64]
}

//Required implements Schedule
func (s ModelSchedule) Required(start, now time.Time, _ float64) float64 {
	return thr.At(start, now, s.Model, s.Override)
}

//ProfileSchedule follows a named threshold profile
type ProfileSchedule struct {
	Profile thr.Profile

	//ByHour raises the threshold to at least the base for the hour of the day
	//at which voting opened
	ByHour bool
}

//Required implements Schedule
func (s ProfileSchedule) Required(start, now time.Time, participation float64) (v float64) {
	v = thr.Progression(s.Profile, now.Sub(start), participation)
	if s.ByHour {
		v = math.Max(v, thr.ScheduledBase(start.Hour()))
	}

	return
}
