package thr_test

import (
	"math"
	"testing"
	"time"

	"github.com/advanderveer/decayvote/thr"
	"github.com/advanderveer/go-test"
)

func TestProgression(t *testing.T) {
	for _, c := range []struct {
		p    thr.Profile
		d    time.Duration
		part float64
		exp  float64
	}{
		{thr.Conservative, 0, 1, 0.51},
		{thr.Conservative, 10 * time.Minute, 1, 0.53},
		{thr.Aggressive, 5 * time.Minute, 1, 0.61},
		{thr.Aggressive, 10 * time.Hour, 1, 0.90},
		{thr.Adaptive, 10 * time.Minute, 0.29, 0.70},
		{thr.Adaptive, 10 * time.Minute, 0.30, 0.60},
		{thr.Adaptive, 0, 0.9, 0.55},
		{thr.Adaptive, 100 * time.Hour, 0.9, 0.90},
		{thr.Conservative, -time.Hour, 1, 0.51},
	} {
		t.Run(c.p.String(), func(t *testing.T) {
			v := thr.Progression(c.p, c.d, c.part)
			test.Assert(t, math.Abs(c.exp-v) < 0.0001, "expected %v after %s, got %v", c.exp, c.d, v)
		})
	}
}

func TestProfileString(t *testing.T) {
	test.Equals(t, "aggressive", thr.Aggressive.String())
	test.Equals(t, "Profile(7)", thr.Profile(7).String())
}

func TestScheduledBase(t *testing.T) {
	test.Equals(t, 0.70, thr.ScheduledBase(0))
	test.Equals(t, 0.70, thr.ScheduledBase(6))
	test.Equals(t, 0.55, thr.ScheduledBase(7))
	test.Equals(t, 0.55, thr.ScheduledBase(18))
	test.Equals(t, 0.60, thr.ScheduledBase(19))
	test.Equals(t, 0.60, thr.ScheduledBase(23))
}
