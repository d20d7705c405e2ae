package crypto

import (
	"encoding/json"
	"fmt"
)

// Package is the unit produced by Encrypt and consumed by Decrypt. All four
// fields are URL-safe base64 without padding; internally the engine is
// byte-oriented. A package is immutable once produced.
type Package struct {
	// Encrypted is the AES-256-GCM ciphertext, excluding the tag.
	Encrypted string `json:"encrypted"`
	// Salt is the 32-byte key-derivation salt.
	Salt string `json:"salt"`
	// IV is the 12-byte AES-GCM nonce.
	IV string `json:"iv"`
	// Tag is the 16-byte AES-GCM authentication tag.
	Tag string `json:"tag"`
}

// packageBytes holds the decoded fields of a validated package.
type packageBytes struct {
	ciphertext []byte
	salt       []byte
	nonce      []byte
	tag        []byte
}

// Validate checks that all four fields decode and that the fixed-width
// fields have their expected sizes. It runs before any cryptographic work so
// malformed input never reaches the AEAD primitives.
func (p *Package) Validate() error {
	_, err := p.decode()
	return err
}

// decode decodes all fields and enforces the fixed-width size invariants:
// salt=32, iv=12, tag=16. Ciphertext length is unconstrained.
func (p *Package) decode() (*packageBytes, error) {
	ciphertext, err := DecodeBase64(p.Encrypted)
	if err != nil {
		return nil, fmt.Errorf("%w: bad encrypted field encoding", ErrInvalidPackage)
	}

	salt, err := DecodeBase64(p.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt encoding", ErrInvalidPackage)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt size %d, expected %d", ErrInvalidPackage, len(salt), SaltSize)
	}

	nonce, err := DecodeBase64(p.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: bad iv encoding", ErrInvalidPackage)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: iv size %d, expected %d", ErrInvalidPackage, len(nonce), NonceSize)
	}

	tag, err := DecodeBase64(p.Tag)
	if err != nil {
		return nil, fmt.Errorf("%w: bad tag encoding", ErrInvalidPackage)
	}
	if len(tag) != TagSize {
		return nil, fmt.Errorf("%w: tag size %d, expected %d", ErrInvalidPackage, len(tag), TagSize)
	}

	return &packageBytes{
		ciphertext: ciphertext,
		salt:       salt,
		nonce:      nonce,
		tag:        tag,
	}, nil
}

// Marshal serializes the package to a compact JSON record. This is the byte
// form handed to the emoji codec.
func (p *Package) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal package: %w", err)
	}
	return data, nil
}

// UnmarshalPackage parses a serialized package and validates its field sizes.
func UnmarshalPackage(data []byte) (*Package, error) {
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}

	if p.Encrypted == "" && p.Salt == "" && p.IV == "" && p.Tag == "" {
		return nil, fmt.Errorf("%w: missing fields", ErrInvalidPackage)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}
