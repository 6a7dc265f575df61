package chain

import (
	"sync"
)

//Chain is an append-only sequence of blocks in which every block is bound to
//its predecessor by hash. It is meant as a local audit trail: a single writer
//appends and anyone can verify that nothing was changed afterwards.
type Chain struct {
	clock  Clock
	blocks []*Block
	mu     sync.RWMutex
}

//NewChain creates a chain with just the genesis block, timestamped by clock
func NewChain(clock Clock) (c *Chain) {
	c = &Chain{clock: clock}
	c.blocks = []*Block{NewBlock(0, clock.ReadUs(), GenesisPayload, NilID)}
	return
}

//Append a new block that holds payload to the chain, it is the only way the
//chain can be changed.
func (c *Chain) Append(payload []byte) (b *Block) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tip := c.tip()
	b = NewBlock(uint64(len(c.blocks)), c.clock.ReadUs(), payload, tip.Hash)
	c.blocks = append(c.blocks, b)
	return
}

//Len returns the number of blocks, including genesis
func (c *Chain) Len() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return uint64(len(c.blocks))
}

//Tip returns the last block in the chain
func (c *Chain) Tip() (b *Block) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tip()
}

func (c *Chain) tip() *Block { return c.blocks[len(c.blocks)-1] }

//Genesis returns the genesis block
func (c *Chain) Genesis() (b *Block) { return c.Read(0) }

//Read the block at index idx, returns nil if the block doesn't exist. Changing
//the returned block changes the chain, which Verify will then report.
func (c *Chain) Read(idx uint64) (b *Block) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx >= uint64(len(c.blocks)) {
		return nil
	}

	return c.blocks[idx]
}

// Walk the chain from genesis towards the tip, calling f for each block. Blocks
// appended during the walk are not visited.
func (c *Chain) Walk(f func(b *Block) error) (err error) {
	c.mu.RLock()
	blocks := c.blocks[:len(c.blocks):len(c.blocks)]
	c.mu.RUnlock()

	for _, b := range blocks {
		if err = f(b); err != nil {
			return err
		}
	}

	return nil
}

//Verify returns whether every block's hash matches its content and every block
//references the hash of the block before it.
func (c *Chain) Verify() (ok bool) {
	return c.Check() == nil
}

//Check is like Verify but returns an IntegrityError describing the first
//violation it encountered.
func (c *Chain) Check() (err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	gen := c.blocks[0]
	switch {
	case gen.Index != 0:
		return IntegrityError{Index: 0, E: ErrIndexMismatch}
	case gen.Prev != NilID:
		return IntegrityError{Index: 0, E: ErrGenesisPrev}
	case !gen.Valid():
		return IntegrityError{Index: 0, E: ErrHashMismatch}
	}

	for i := 1; i < len(c.blocks); i++ {
		b, prev := c.blocks[i], c.blocks[i-1]
		switch {
		case b.Index != uint64(i):
			return IntegrityError{Index: uint64(i), E: ErrIndexMismatch}
		case !b.Valid():
			return IntegrityError{Index: uint64(i), E: ErrHashMismatch}
		case b.Prev != prev.Hash:
			return IntegrityError{Index: uint64(i), E: ErrPrevMismatch}
		}
	}

	return nil
}
