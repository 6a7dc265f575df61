package chain

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

//IDLen is the id length
const IDLen = sha256.Size

//ID of a block is determined by hashing it
type ID [IDLen]byte

//NilID is the empty id, the genesis block references it as its prev
var NilID = ID{}

//GenesisPayload marks the payload of the genesis block
var GenesisPayload = []byte("vi veri veniversum vivus vici")

func (id ID) String() string { return fmt.Sprintf("%.6x", id[:]) }

//Hex returns the full hex encoding of the id
func (id ID) Hex() string { return hex.EncodeToString(id[:]) }

//Bytes returns the underlying bytes as a slice
func (id ID) Bytes() []byte { return id[:] }

//Block is one record in the chain. Its Hash is only ever derived from the
//other fields, it is stored to link the next block to it.
type Block struct {

	// Position of the block in the chain, the genesis block is at 0
	Index uint64

	// Microseconds since the unix epoch at which the block was appended
	Timestamp uint64

	// Opaque data the block anchors in the chain
	Payload []byte

	// Hash of the block before this one, NilID for genesis
	Prev ID

	// Hash of this block as computed when it was appended
	Hash ID
}

//NewBlock creates a block and computes its hash
func NewBlock(idx, ts uint64, payload []byte, prev ID) (b *Block) {
	b = &Block{Index: idx, Timestamp: ts, Prev: prev}
	b.Payload = make([]byte, len(payload))
	copy(b.Payload, payload)
	b.Hash = b.ComputeHash()
	return
}

//ComputeHash hashes the index, timestamp, prev hash and payload of the block.
//The stored Hash field is not part of the input.
func (b *Block) ComputeHash() (id ID) {
	idxb := make([]byte, 8)
	binary.BigEndian.PutUint64(idxb, b.Index)
	tsb := make([]byte, 8)
	binary.BigEndian.PutUint64(tsb, b.Timestamp)

	//fixed size fields first, the payload is the only variable length part
	return ID(sha256.Sum256(bytes.Join([][]byte{
		idxb,
		tsb,
		b.Prev.Bytes(),
		b.Payload,
	}, nil)))
}

//Valid returns whether the stored hash matches the block's content
func (b *Block) Valid() bool { return b.ComputeHash() == b.Hash }
