package weight

import (
	"math"
	"time"

	"github.com/advanderveer/decayvote/decay"
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
)

//Places is the number of decimal places effective weights are quantized to,
//fewer when the integer digits leave no room for them in the precision.
const Places = 12

//a bonus lower then this would turn weights negative
var minBonus = apd.New(-1, 0)

//WeightedVote is a vote as it is about to be weighed: the original weight it
//was cast with, how it decays and the reputation bonus of its voter.
type WeightedVote struct {
	Voter  string
	Time   time.Time
	Weight *apd.Decimal
	Decay  decay.Model
	Bonus  *apd.Decimal
}

//Effective returns the vote's weight after decaying it between start and now,
//multiplied by one plus the reputation bonus. A nil bonus counts as zero.
func (wv *WeightedVote) Effective(c *apd.Context, start, now time.Time) (w *apd.Decimal, err error) {
	if wv.Weight == nil || wv.Weight.Form != apd.Finite || wv.Weight.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidWeight, "vote of '%s'", wv.Voter)
	}

	if wv.Bonus != nil && (wv.Bonus.Form != apd.Finite || wv.Bonus.Cmp(minBonus) < 0) {
		return nil, errors.Wrapf(ErrInvalidBonus, "voter '%s' has bonus %s", wv.Voter, wv.Bonus)
	}

	orig, err := wv.Weight.Float64()
	if err != nil || math.IsInf(orig, 0) {
		return nil, errors.Wrapf(ErrInvalidWeight, "vote of '%s' doesn't fit a float", wv.Voter)
	}

	w = new(apd.Decimal)
	if _, err = w.SetFloat64(decay.Weight(orig, start, now, wv.Decay)); err != nil {
		return nil, errors.Wrap(err, "failed to represent decayed weight")
	}

	mult := apd.New(1, 0)
	if wv.Bonus != nil {
		if _, err = c.Add(mult, mult, wv.Bonus); err != nil {
			return nil, errors.Wrap(err, "failed to add reputation bonus")
		}
	}

	if _, err = c.Mul(w, w, mult); err != nil {
		return nil, errors.Wrap(err, "failed to apply reputation bonus")
	}

	if _, err = c.Quantize(w, w, quantum(c, w)); err != nil {
		return nil, errors.Wrap(err, "failed to quantize effective weight")
	}

	return
}

//quantum returns the exponent w is quantized to. It keeps one digit of the
//precision free so rounding up can't overflow the coefficient.
func quantum(c *apd.Context, w *apd.Decimal) int32 {
	exp := int64(-Places)
	intd := w.NumDigits() + int64(w.Exponent)
	if intd-exp >= int64(c.Precision) {
		exp = intd - int64(c.Precision) + 1
	}

	return int32(exp)
}
