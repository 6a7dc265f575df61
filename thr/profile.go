package thr

import (
	"fmt"
	"time"
)

//Profile is a named threshold progression, it is an alternative to selecting a
//Model and the two are never combined.
type Profile int

const (
	//Conservative raises the threshold by 1% every 5 minutes
	Conservative Profile = iota

	//Aggressive raises the threshold by 2% every minute
	Aggressive

	//Adaptive pins the threshold when participation is low and raises it by 1%
	//every 2 minutes otherwise
	Adaptive
)

//LowParticipation is the participation ratio under which the Adaptive profile
//pins its threshold
const LowParticipation = 0.30

func (p Profile) String() string {
	switch p {
	case Conservative:
		return "conservative"
	case Aggressive:
		return "aggressive"
	case Adaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

//Progression returns the threshold for profile p after elapsed time has passed,
//participation is the ratio of eligible voters that voted and is only consulted
//by the Adaptive profile.
func Progression(p Profile, elapsed time.Duration, participation float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}

	secs := elapsed.Seconds()
	switch p {
	case Conservative:
		return Clamp(MinThreshold + 0.01*(secs/300))
	case Aggressive:
		return Clamp(MinThreshold + 0.02*(secs/60))
	case Adaptive:
		if participation < LowParticipation {
			return 0.70
		}

		return Clamp(0.55 + 0.01*(secs/120))
	default:
		panic("thr: unsupported profile " + p.String())
	}
}

//ScheduledBase returns a base threshold that depends on the hour of the day: a
//higher bar at night when few are around to vote.
func ScheduledBase(hour int) float64 {
	switch {
	case hour >= 0 && hour <= 6:
		return 0.70
	case hour >= 7 && hour <= 18:
		return 0.55
	default:
		return 0.60
	}
}
