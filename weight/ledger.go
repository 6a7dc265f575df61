package weight

import (
	"sync"
	"time"

	"github.com/advanderveer/decayvote/decay"
	"github.com/cockroachdb/apd"
	iradix "github.com/hashicorp/go-immutable-radix"
)

//Entry is one computed weight in the ledger's history
type Entry struct {
	Voter  string
	Weight *apd.Decimal
	Time   time.Time
}

//Ledger weighs votes and remembers the outcome: the latest effective weight per
//voter and a history of every weight it ever computed. It also holds the
//reputation bonus of each voter. All state is only changed through its methods.
type Ledger struct {
	ctx        *apd.Context
	cache      *iradix.Tree //voter -> *apd.Decimal, replaced on every write
	history    []Entry
	reputation map[string]*apd.Decimal
	mu         sync.RWMutex
}

//NewLedger creates an empty ledger that computes with decimal context c
func NewLedger(c *apd.Context) *Ledger {
	return &Ledger{
		ctx:        c,
		cache:      iradix.New(),
		reputation: make(map[string]*apd.Decimal),
	}
}

//SetReputation configures the reputation bonus for a voter, replacing any
//earlier bonus.
func (l *Ledger) SetReputation(voter string, bonus *apd.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reputation[voter] = new(apd.Decimal).Set(bonus)
}

//Reputation returns the reputation bonus of a voter, zero when the voter has
//none configured.
func (l *Ledger) Reputation(voter string) (bonus *apd.Decimal) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rep(voter)
}

func (l *Ledger) rep(voter string) *apd.Decimal {
	bonus, ok := l.reputation[voter]
	if !ok {
		return apd.New(0, 0)
	}

	return new(apd.Decimal).Set(bonus)
}

//Vote prepares a weighted vote for voter with its current reputation bonus
func (l *Ledger) Vote(voter string, t time.Time, w *apd.Decimal, m decay.Model) *WeightedVote {
	return &WeightedVote{
		Voter:  voter,
		Time:   t,
		Weight: w,
		Decay:  m,
		Bonus:  l.Reputation(voter),
	}
}

//Record computes the effective weight of wv as decayed between start and now,
//caches it for the voter and appends it to the history.
func (l *Ledger) Record(wv *WeightedVote, start, now time.Time) (w *apd.Decimal, err error) {
	w, err = wv.Effective(l.ctx, start, now)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.record(wv.Voter, w, now)
	return new(apd.Decimal).Set(w), nil
}

//Batch records a sequence of votes and returns the effective weights of just
//this batch. If any vote can't be weighed nothing is recorded.
func (l *Ledger) Batch(wvs []*WeightedVote, start, now time.Time) (ws map[string]*apd.Decimal, err error) {
	return l.batch(wvs, func(*WeightedVote) time.Time { return start }, now)
}

//BatchSinceCast is like Batch but decays every vote from the moment it was
//cast until now.
func (l *Ledger) BatchSinceCast(wvs []*WeightedVote, now time.Time) (ws map[string]*apd.Decimal, err error) {
	return l.batch(wvs, func(wv *WeightedVote) time.Time { return wv.Time }, now)
}

func (l *Ledger) batch(wvs []*WeightedVote, startOf func(wv *WeightedVote) time.Time, now time.Time) (ws map[string]*apd.Decimal, err error) {
	computed := make([]*apd.Decimal, len(wvs))
	for i, wv := range wvs {
		computed[i], err = wv.Effective(l.ctx, startOf(wv), now)
		if err != nil {
			return nil, err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	ws = make(map[string]*apd.Decimal, len(wvs))
	for i, wv := range wvs {
		l.record(wv.Voter, computed[i], now)
		ws[wv.Voter] = new(apd.Decimal).Set(computed[i])
	}

	return
}

func (l *Ledger) record(voter string, w *apd.Decimal, now time.Time) {
	l.cache, _, _ = l.cache.Insert([]byte(voter), w)
	l.history = append(l.history, Entry{Voter: voter, Weight: w, Time: now})
}

//Cached returns the latest effective weight computed for voter
func (l *Ledger) Cached(voter string) (w *apd.Decimal, ok bool) {
	return l.Snapshot().Get(voter)
}

//History returns a copy of every weight that was computed, in order
func (l *Ledger) History() (h []Entry) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	h = make([]Entry, len(l.history))
	for i, e := range l.history {
		h[i] = Entry{Voter: e.Voter, Weight: new(apd.Decimal).Set(e.Weight), Time: e.Time}
	}

	return
}

//Snapshot returns a point-in-time view of the cached weights. Later writes to
//the ledger are not visible through it.
func (l *Ledger) Snapshot() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Snapshot{tree: l.cache}
}

//Snapshot is a read-only view of the latest weight per voter
type Snapshot struct {
	tree *iradix.Tree
}

//Len returns the number of voters with a cached weight
func (s *Snapshot) Len() int { return s.tree.Len() }

//Get the cached weight of a voter
func (s *Snapshot) Get(voter string) (w *apd.Decimal, ok bool) {
	v, ok := s.tree.Get([]byte(voter))
	if !ok {
		return nil, false
	}

	return new(apd.Decimal).Set(v.(*apd.Decimal)), true
}

//Walk calls f for each voter in lexicographic order until f returns false
func (s *Snapshot) Walk(f func(voter string, w *apd.Decimal) bool) {
	s.tree.Root().Walk(func(k []byte, v interface{}) bool {
		return !f(string(k), new(apd.Decimal).Set(v.(*apd.Decimal)))
	})
}

//Total sums all cached weights using context c
func (s *Snapshot) Total(c *apd.Context) (sum *apd.Decimal, err error) {
	sum = apd.New(0, 0)
	s.Walk(func(_ string, w *apd.Decimal) bool {
		_, err = c.Add(sum, sum, w)
		return err == nil
	})

	return sum, err
}
