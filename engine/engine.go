package engine

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/advanderveer/decayvote/chain"
	"github.com/advanderveer/decayvote/decay"
	"github.com/advanderveer/decayvote/tally"
	"github.com/advanderveer/decayvote/thr"
	"github.com/advanderveer/decayvote/vote"
	"github.com/advanderveer/decayvote/weight"
	"github.com/advanderveer/decayvote/window"
	"github.com/cockroachdb/apd"
	"github.com/pkg/errors"
)

//Proposal is tallied by the engine
type Proposal struct {
	//Identifies the proposal in the ledger
	ID string

	//Category determines the base requirement to pass
	Category tally.Category

	//Session in which votes must have been cast to count
	Session *window.Session

	//Decay of the vote weights, if nil the configured default is used
	Decay decay.Model

	//Schedule raises the required fraction over time, if nil only the
	//category's requirement applies.
	Schedule Schedule

	//Eligible is the number of voters that could have voted, it determines the
	//participation. Zero means participation is considered complete.
	Eligible uint64
}

//Decision is the outcome of a tally
type Decision struct {
	Record  *Record
	Passed  bool
	Weights map[string]*apd.Decimal
	Block   *chain.Block
	Dropped []*vote.Signed
}

//Engine tallies proposals and anchors every result in a hash chain. Only one
//tally or audit runs at a time.
type Engine struct {
	conf    *Conf
	ctx     *apd.Context
	logs    *log.Logger
	chain   *chain.Chain
	weights *weight.Ledger
	history []tally.Outcome
	mu      sync.Mutex
}

//New creates an engine with a fresh ledger
func New(conf *Conf) (e *Engine, err error) {
	if err = conf.Validate(); err != nil {
		return nil, err
	}

	e = &Engine{
		conf:  conf,
		ctx:   conf.DecimalContext(),
		logs:  log.New(conf.LogWriter, "", 0),
		chain: chain.NewChain(conf.Clock),
	}

	e.weights = weight.NewLedger(e.ctx)
	return
}

//Chain returns the hash chain the engine appends to
func (e *Engine) Chain() *chain.Chain { return e.chain }

//Weights returns the ledger that weighs the votes, its reputation bonuses can
//be configured through it.
func (e *Engine) Weights() *weight.Ledger { return e.weights }

//Tally the signed ballots for proposal p at time now. Ballots are dropped when
//their signature is invalid, their weight isn't positive and finite, they were
//cast outside the proposal's session or their voter already voted. The
//decision is appended to the chain.
func (e *Engine) Tally(p *Proposal, ballots []*vote.Signed, now time.Time) (d *Decision, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case p.ID == "":
		return nil, ErrNoProposalID
	case p.Session == nil:
		return nil, errors.Wrapf(ErrNoSession, "proposal '%s'", p.ID)
	}

	d = &Decision{}
	valid := e.filter(p, ballots, d)
	if len(valid) < 1 {
		e.logs.Printf("[INFO][%s] no valid votes out of %d ballots, nothing to tally", p.ID, len(ballots))
		return nil, errors.Wrapf(ErrNoVotes, "proposal '%s'", p.ID)
	}

	m := p.Decay
	if m == nil {
		m = e.conf.Decay
	}

	rec := &Record{
		Proposal: p.ID,
		Category: p.Category.String(),
		Time:     now.UTC(),
	}

	wvs := make([]*weight.WeightedVote, 0, len(valid))
	for _, s := range valid {
		orig := new(apd.Decimal)
		if _, err = orig.SetFloat64(s.Vote.Weight); err != nil {
			return nil, errors.Wrapf(err, "failed to represent weight of '%s'", s.Vote.Voter)
		}

		wvs = append(wvs, e.weights.Vote(s.Vote.Voter, s.Vote.Time, orig, m))
	}

	//weights decay from the moment the vote was cast until the tally, none are
	//recorded unless all of them could be weighed
	d.Weights, err = e.weights.BatchSinceCast(wvs, now)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to weigh votes for '%s'", p.ID)
	}

	yesw, totalw := apd.New(0, 0), apd.New(0, 0)
	for _, s := range valid {
		w := d.Weights[s.Vote.Voter]
		if _, err = e.ctx.Add(totalw, totalw, w); err != nil {
			return nil, errors.Wrap(err, "failed to sum total weight")
		}

		rec.Total++
		if s.Vote.Approve {
			rec.Yes++
			if _, err = e.ctx.Add(yesw, yesw, w); err != nil {
				return nil, errors.Wrap(err, "failed to sum yes weight")
			}
		}

		v := s.Vote
		v.Time = v.Time.UTC()
		rec.Votes = append(rec.Votes, v)
	}

	participation := 1.0
	if p.Eligible > 0 {
		participation = float64(rec.Total) / float64(p.Eligible)
	}

	req := tally.RequirementFor(p.Category)
	if p.Schedule != nil {
		req = req.Raise(p.Schedule.Required(p.Session.Start, now, participation))
	}

	if e.conf.Weighted {
		d.Passed, err = req.IsMetWeighted(e.ctx, yesw, totalw, rec.Yes)
		if err != nil {
			return nil, err
		}
	} else {
		d.Passed = req.IsMet(rec.Yes, rec.Total)
	}

	rec.Result, rec.Required = Failed, req.MinFraction
	rec.YesWeight, rec.TotalWeight = yesw.String(), totalw.String()
	if d.Passed {
		rec.Result = Passed
	}

	payload, err := rec.Encode()
	if err != nil {
		return nil, err
	}

	d.Record = rec
	d.Block = e.chain.Append(payload)
	e.history = append(e.history, tally.Outcome{Time: now, Total: rec.Total, Yes: rec.Yes, Passed: d.Passed})

	e.logs.Printf("[INFO][%s] %s with %d/%d yes votes (weight %s/%s, required %.4f), appended block %d (%s)",
		p.ID, rec.Result, rec.Yes, rec.Total, rec.YesWeight, rec.TotalWeight, rec.Required, d.Block.Index, d.Block.Hash)

	return d, nil
}

func (e *Engine) filter(p *Proposal, ballots []*vote.Signed, d *Decision) (valid []*vote.Signed) {
	seen := make(map[string]struct{}, len(ballots))
	for _, s := range ballots {
		var reason string
		switch {
		case s == nil:
			continue
		case !s.Verify():
			reason = "invalid signature"
		case !(s.Vote.Weight > 0) || math.IsInf(s.Vote.Weight, 1):
			reason = "invalid weight"
		case !p.Session.Contains(s.Vote.Time):
			reason = "cast outside the voting session"
		default:
			if _, ok := seen[s.Vote.Voter]; ok {
				reason = "voter already voted"
			}
		}

		if reason != "" {
			e.logs.Printf("[INFO][%s] dropped ballot of '%s': %s", p.ID, s.Vote.Voter, reason)
			d.Dropped = append(d.Dropped, s)
			continue
		}

		seen[s.Vote.Voter] = struct{}{}
		valid = append(valid, s)
	}

	return
}

//Audit verifies the whole chain and returns the records it anchors, oldest
//first. It refuses to return any record when the chain was tampered with.
func (e *Engine) Audit() (recs []*Record, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err = e.chain.Check(); err != nil {
		e.logs.Printf("[ERRO] ledger failed verification: %v", err)
		return nil, errors.Wrap(err, "refusing to trust ledger")
	}

	if err = e.chain.Walk(func(b *chain.Block) error {
		if b.Index == 0 {
			return nil //genesis
		}

		rec, err := DecodeRecord(b.Payload)
		if err != nil {
			return errors.Wrapf(err, "block %d", b.Index)
		}

		recs = append(recs, rec)
		return nil
	}); err != nil {
		return nil, err
	}

	return
}

//History returns the outcome of every proposal tallied so far
func (e *Engine) History() (h []tally.Outcome) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append(h, e.history...)
}

//Recommend a threshold profile for the next proposal based on past turnout
func (e *Engine) Recommend() thr.Profile {
	return tally.RecommendProfile(e.History())
}
