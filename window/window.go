package window

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

//Window is the length of time a proposal accepts votes
type Window time.Duration

const (
	//Short windows are open for 5 minutes
	Short = Window(5 * time.Minute)

	//Medium windows are open for 30 minutes
	Medium = Window(30 * time.Minute)

	//Long windows are open for 2 hours
	Long = Window(2 * time.Hour)
)

//Custom returns a window of arbitrary length
func Custom(d time.Duration) Window { return Window(d) }

//Duration of the window
func (w Window) Duration() time.Duration { return time.Duration(w) }

func (w Window) String() string {
	switch w {
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Long:
		return "long"
	default:
		return fmt.Sprintf("custom(%s)", time.Duration(w))
	}
}

//Parse a window from its name or from a duration string like "45m"
func Parse(s string) (w Window, err error) {
	for _, w = range []Window{Short, Medium, Long} {
		if w.String() == s {
			return w, nil
		}
	}

	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.Wrapf(ErrInvalidWindow, "'%s'", s)
	}

	return Custom(d), nil
}

//Session is the period during which a proposal accepts votes. It can be
//extended only once.
type Session struct {
	Start    time.Time
	Window   Window
	Extended bool
}

//NewSession opens a session at start
func NewSession(start time.Time, w Window) *Session {
	return &Session{Start: start, Window: w}
}

//End returns the moment the session closes
func (s *Session) End() time.Time { return s.Start.Add(s.Window.Duration()) }

//Expired returns whether the session has closed at now
func (s *Session) Expired(now time.Time) bool { return now.After(s.End()) }

//Contains returns whether t lies within the session, both ends inclusive
func (s *Session) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End())
}

//Remaining returns the time left before the session closes, zero once closed
func (s *Session) Remaining(now time.Time) time.Duration {
	end := s.End()
	if !now.Before(end) {
		return 0
	}

	return end.Sub(now)
}

//Extend the session by d, returns ErrAlreadyExtended on a second extension
func (s *Session) Extend(d time.Duration) error {
	if s.Extended {
		return ErrAlreadyExtended
	}

	s.Window = Custom(s.Window.Duration() + d)
	s.Extended = true
	return nil
}
