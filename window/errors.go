package window

import "fmt"

var (
	//ErrAlreadyExtended is returned when a session was already extended once
	ErrAlreadyExtended = fmt.Errorf("session was already extended")

	//ErrInvalidWindow is returned when a window can't be parsed
	ErrInvalidWindow = fmt.Errorf("invalid voting window")
)
