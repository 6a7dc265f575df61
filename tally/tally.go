package tally

import (
	"fmt"
	"time"

	"github.com/advanderveer/decayvote/thr"
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
)

//Category classifies a proposal by how disruptive it is, more disruptive
//proposals need a broader and larger majority.
type Category int

const (
	//Normal proposals need a simple majority
	Normal Category = iota

	//Critical proposals need a large majority and many votes
	Critical

	//Emergency proposals need a near unanimous vote, of any size
	Emergency
)

func (c Category) String() string {
	switch c {
	case Normal:
		return "normal"
	case Critical:
		return "critical"
	case Emergency:
		return "emergency"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

//ParseCategory parses the string form of a category
func ParseCategory(s string) (c Category, err error) {
	for _, c = range []Category{Normal, Critical, Emergency} {
		if c.String() == s {
			return c, nil
		}
	}

	return Normal, errors.Wrapf(ErrUnknownCategory, "'%s'", s)
}

//Requirement describes what a tally must reach for a proposal to pass: both the
//fraction and the absolute number of yes votes must be met.
type Requirement struct {
	MinFraction float64
	MinYes      uint64
}

//RequirementFor returns the requirement for proposals in category c
func RequirementFor(c Category) Requirement {
	switch c {
	case Critical:
		return Requirement{MinFraction: 0.80, MinYes: 15}
	case Emergency:
		return Requirement{MinFraction: 0.90, MinYes: 0}
	default:
		return Requirement{MinFraction: 0.51, MinYes: 5}
	}
}

//Raise returns a copy of the requirement whose fraction is at least f
func (r Requirement) Raise(f float64) Requirement {
	if f > r.MinFraction {
		r.MinFraction = f
	}

	return r
}

//IsMet returns whether yes out of total votes satisfies the requirement. A tally
//without any votes never passes.
func (r Requirement) IsMet(yes, total uint64) bool {
	if total == 0 {
		return false
	}

	return float64(yes)/float64(total) >= r.MinFraction && yes >= r.MinYes
}

//IsMetWeighted is like IsMet but takes the fraction over the summed effective
//weights of the yes votes and of all votes. The absolute minimum still counts
//yes votes, not weight. Computations use context c.
func (r Requirement) IsMetWeighted(c *apd.Context, yesw, totalw *apd.Decimal, yes uint64) (ok bool, err error) {
	if totalw.Sign() <= 0 {
		return false, nil
	}

	frac := new(apd.Decimal)
	if _, err = c.Quo(frac, yesw, totalw); err != nil {
		return false, errors.Wrap(err, "tally: failed to divide weights")
	}

	min := new(apd.Decimal)
	if _, err = min.SetFloat64(r.MinFraction); err != nil {
		return false, errors.Wrap(err, "tally: invalid minimum fraction")
	}

	return frac.Cmp(min) >= 0 && yes >= r.MinYes, nil
}

//Outcome records how a past proposal went
type Outcome struct {
	Time   time.Time
	Total  uint64
	Yes    uint64
	Passed bool
}

//LowTurnout is the average number of votes under which proposals are
//considered poorly attended
const LowTurnout = 5.0

//RecommendProfile recommends a threshold profile based on the turnout of past
//proposals: the aggressive profile when on average fewer then LowTurnout votes
//were cast, the conservative profile otherwise or without any history.
func RecommendProfile(history []Outcome) thr.Profile {
	if len(history) < 1 {
		return thr.Conservative
	}

	var sum float64
	for _, o := range history {
		sum += float64(o.Total)
	}

	if sum/float64(len(history)) < LowTurnout {
		return thr.Aggressive
	}

	return thr.Conservative
}
