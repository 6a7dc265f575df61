package vote

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"
)

//Identity is a voter that can sign its votes
type Identity struct {
	name string
	pk   ed25519.PublicKey
	sk   ed25519.PrivateKey
}

//NewIdentity will create an identity from the provided random bytes, if nil
//random bytes are read from the system.
func NewIdentity(name string, rndid []byte) (idn *Identity, err error) {
	idn = &Identity{name: name}

	rndr := rand.Reader
	if rndid != nil {
		rb := make([]byte, ed25519.SeedSize)
		copy(rb, rndid)
		rndr = bytes.NewReader(rb)
	}

	idn.pk, idn.sk, err = ed25519.GenerateKey(rndr)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate signing keys")
	}

	return
}

//PK returns a copy of the public key
func (idn *Identity) PK() ed25519.PublicKey {
	pk := make(ed25519.PublicKey, len(idn.pk))
	copy(pk, idn.pk)
	return pk
}

//Sign the vote, the vote's voter is set to this identity's name
func (idn *Identity) Sign(v Vote) *Signed {
	v.Voter = idn.name
	return &Signed{
		Vote:      v,
		PK:        idn.PK(),
		Signature: ed25519.Sign(idn.sk, v.Bytes()),
	}
}

//String returns a human readable identity
func (idn *Identity) String() string {
	if idn.name != "" {
		return idn.name
	}

	return fmt.Sprintf("%.4x", []byte(idn.pk))
}

//Signed is a vote together with the signature of its voter
type Signed struct {
	Vote      Vote
	PK        ed25519.PublicKey
	Signature []byte
}

//Verify returns whether the signature is valid for the vote and public key
func (s *Signed) Verify() bool {
	if len(s.PK) != ed25519.PublicKeySize {
		return false
	}

	return ed25519.Verify(s.PK, s.Vote.Bytes(), s.Signature)
}

//Check is like Verify but returns ErrInvalidSignature when the signature is invalid
func (s *Signed) Check() error {
	if !s.Verify() {
		return errors.Wrapf(ErrInvalidSignature, "vote of '%s'", s.Vote.Voter)
	}

	return nil
}
