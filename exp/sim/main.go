package main

import (
	"fmt"
	"os"
	"time"

	"github.com/advanderveer/decayvote/chain"
	"github.com/advanderveer/decayvote/decay"
	"github.com/advanderveer/decayvote/engine"
	"github.com/advanderveer/decayvote/tally"
	"github.com/advanderveer/decayvote/thr"
	"github.com/advanderveer/decayvote/vote"
	"github.com/advanderveer/decayvote/window"
	"github.com/cockroachdb/apd"
)

func main() {
	conf := engine.DefaultConf()
	conf.LogWriter = os.Stdout
	conf.Decay = decay.Stepped{Interval: time.Minute, Factor: 0.05}

	e, err := engine.New(conf)
	if err != nil {
		panic(err)
	}

	//long standing members get a bonus
	e.Weights().SetReputation("alice", apd.New(2, -1))
	e.Weights().SetReputation("bob", apd.New(1, -1))

	start := time.Now()
	sess := window.NewSession(start, window.Short)
	p := &engine.Proposal{
		ID:       "proposal_1",
		Category: tally.Normal,
		Session:  sess,
		Schedule: engine.ModelSchedule{Model: thr.Sigmoid{Steepness: 0.5, Midpoint: 10}},
		Eligible: 6,
	}

	var ballots []*vote.Signed
	for i, name := range []string{"alice", "bob", "carol", "dave", "eve"} {
		rnd := make([]byte, 32)
		rnd[0] = byte(i + 1)
		idn, err := vote.NewIdentity(name, rnd)
		if err != nil {
			panic(err)
		}

		ballots = append(ballots, idn.Sign(vote.Vote{
			Validator: fmt.Sprintf("validator_%d", i%2),
			Time:      start.Add(time.Duration(i) * 30 * time.Second),
			Weight:    100,
			Approve:   name != "eve",
		}))
	}

	d, err := e.Tally(p, ballots, sess.End())
	if err != nil {
		panic(err)
	}

	for voter, w := range d.Weights {
		fmt.Printf("%s: %s\n", voter, w.Text('f'))
	}

	if err = e.Chain().Walk(func(b *chain.Block) error {
		fmt.Printf("#%d %s <- %s: %d bytes\n", b.Index, b.Hash, b.Prev, len(b.Payload))
		return nil
	}); err != nil {
		panic(err)
	}

	recs, err := e.Audit()
	if err != nil {
		panic(err)
	}

	fmt.Printf("verified %d record(s), next proposal should use a %s profile\n", len(recs), e.Recommend())
}
