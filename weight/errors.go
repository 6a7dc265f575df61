package weight

import "fmt"

var (
	//ErrInvalidWeight is returned when a vote has no positive, finite original weight
	ErrInvalidWeight = fmt.Errorf("vote weight must be positive and finite")

	//ErrInvalidBonus is returned when a reputation bonus isn't finite or would
	//turn the weight negative
	ErrInvalidBonus = fmt.Errorf("reputation bonus must be finite and at least -1")
)
