package chain

import "fmt"

var (
	//ErrHashMismatch is returned when a block's stored hash differs from its content
	ErrHashMismatch = fmt.Errorf("stored hash doesn't match block content")

	//ErrPrevMismatch is returned when a block doesn't reference its predecessor's hash
	ErrPrevMismatch = fmt.Errorf("prev hash doesn't match predecessor")

	//ErrIndexMismatch is returned when a block's index isn't its position
	ErrIndexMismatch = fmt.Errorf("index doesn't match position in chain")

	//ErrGenesisPrev is returned when the genesis block doesn't reference NilID
	ErrGenesisPrev = fmt.Errorf("genesis block doesn't reference the nil id")
)

//IntegrityError is returned when the chain failed verification at a block
type IntegrityError struct {
	Index uint64
	E     error
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("chain integrity violated at block %d: %v", e.Index, e.E)
}
