package engine

import "fmt"

var (
	//ErrNoVotes is returned when a proposal has no valid votes left to tally
	ErrNoVotes = fmt.Errorf("no valid votes to tally")

	//ErrNoSession is returned when a proposal has no voting session
	ErrNoSession = fmt.Errorf("proposal has no voting session")

	//ErrNoProposalID is returned when a proposal has no identifier
	ErrNoProposalID = fmt.Errorf("proposal has no identifier")
)
