package tally

import "fmt"

var (
	//ErrUnknownCategory is returned when a category name can't be parsed
	ErrUnknownCategory = fmt.Errorf("unknown proposal category")
)
