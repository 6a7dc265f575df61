package vote

import "fmt"

var (
	//ErrInvalidSignature is returned when a vote's signature doesn't verify
	ErrInvalidSignature = fmt.Errorf("invalid vote signature")
)
