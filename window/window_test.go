package window_test

import (
	"testing"
	"time"

	"github.com/advanderveer/decayvote/window"
	"github.com/advanderveer/go-test"
)

var t0 = time.Date(2019, 6, 1, 12, 0, 0, 0, time.UTC)

func TestWindows(t *testing.T) {
	test.Equals(t, 5*time.Minute, window.Short.Duration())
	test.Equals(t, 30*time.Minute, window.Medium.Duration())
	test.Equals(t, 2*time.Hour, window.Long.Duration())
	test.Equals(t, "custom(45m0s)", window.Custom(45*time.Minute).String())

	for _, c := range []struct {
		in  string
		exp window.Window
	}{
		{"short", window.Short},
		{"medium", window.Medium},
		{"long", window.Long},
		{"45m", window.Custom(45 * time.Minute)},
	} {
		w, err := window.Parse(c.in)
		test.Ok(t, err)
		test.Equals(t, c.exp, w)
	}

	_, err := window.Parse("forever")
	test.Assert(t, err != nil, "should fail to parse")
	_, err = window.Parse("-5m")
	test.Assert(t, err != nil, "should not accept negative windows")
}

func TestSession(t *testing.T) {
	s := window.NewSession(t0, window.Short)
	test.Equals(t, t0.Add(5*time.Minute), s.End())

	test.Equals(t, false, s.Expired(t0.Add(5*time.Minute)))
	test.Equals(t, true, s.Expired(t0.Add(5*time.Minute+time.Nanosecond)))

	test.Equals(t, 2*time.Minute, s.Remaining(t0.Add(3*time.Minute)))
	test.Equals(t, time.Duration(0), s.Remaining(t0.Add(5*time.Minute)))
	test.Equals(t, time.Duration(0), s.Remaining(t0.Add(time.Hour)))

	test.Equals(t, true, s.Contains(t0))
	test.Equals(t, true, s.Contains(s.End()))
	test.Equals(t, false, s.Contains(t0.Add(-time.Second)))

	t.Run("extend once", func(t *testing.T) {
		test.Ok(t, s.Extend(time.Minute))
		test.Equals(t, t0.Add(6*time.Minute), s.End())
		test.Equals(t, true, s.Extended)

		test.Equals(t, window.ErrAlreadyExtended, s.Extend(time.Minute))
		test.Equals(t, t0.Add(6*time.Minute), s.End())
	})
}
