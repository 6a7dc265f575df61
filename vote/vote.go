package vote

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"time"
)

//Vote is cast by a voter through a validator at some time with some weight.
//A vote is immutable once created.
type Vote struct {
	Voter     string    `json:"voter"`
	Validator string    `json:"validator"`
	Time      time.Time `json:"time"`
	Weight    float64   `json:"weight"`
	Approve   bool      `json:"approve"`
}

//Bytes returns a deterministic encoding of the vote, it is what gets signed
func (v *Vote) Bytes() []byte {
	tsb := make([]byte, 8)
	binary.BigEndian.PutUint64(tsb, uint64(v.Time.UnixNano()))
	wb := make([]byte, 8)
	binary.BigEndian.PutUint64(wb, math.Float64bits(v.Weight))
	ab := []byte{0x00}
	if v.Approve {
		ab[0] = 0x01
	}

	//length prefix the strings so voter and validator can't bleed into each other
	return bytes.Join([][]byte{
		lenPrefix(v.Voter),
		lenPrefix(v.Validator),
		tsb,
		wb,
		ab,
	}, nil)
}

//Hash returns a sha256 of the vote's bytes
func (v *Vote) Hash() [sha256.Size]byte { return sha256.Sum256(v.Bytes()) }

func lenPrefix(s string) []byte {
	b := make([]byte, 4, 4+len(s))
	binary.BigEndian.PutUint32(b, uint32(len(s)))
	return append(b, s...)
}
