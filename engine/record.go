package engine

import (
	"encoding/json"
	"time"

	"github.com/advanderveer/decayvote/vote"
	"github.com/pkg/errors"
)

const (
	//Passed is the result of a proposal that met its requirement
	Passed = "PASSED"

	//Failed is the result of a proposal that didn't
	Failed = "FAILED"
)

//Record is what gets anchored in the ledger for every tallied proposal
type Record struct {
	Proposal    string      `json:"proposal_id"`
	Category    string      `json:"category"`
	Votes       []vote.Vote `json:"votes"`
	Result      string      `json:"result"`
	Required    float64     `json:"required"`
	Yes         uint64      `json:"yes"`
	Total       uint64      `json:"total"`
	YesWeight   string      `json:"yes_weight"`
	TotalWeight string      `json:"total_weight"`
	Time        time.Time   `json:"time"`
}

//Encode the record into the deterministic bytes that form a block's payload
func (r *Record) Encode() (p []byte, err error) {
	p, err = json.Marshal(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode record")
	}

	return
}

//DecodeRecord decodes a block payload back into a record
func DecodeRecord(p []byte) (r *Record, err error) {
	r = &Record{}
	if err = json.Unmarshal(p, r); err != nil {
		return nil, errors.Wrap(err, "failed to decode record")
	}

	return
}
