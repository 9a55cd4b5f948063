package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JSON defines an interface for JSON operations to enable mocking
//
//go:generate mockgen -source=codec.go -destination=../mocks/codec.go -package=mocks -mock_names=JSON=MockJSON,Canonicalizer=MockCanonicalizer
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// Canonicalizer renders values as RFC 8785 canonical JSON so that equal values hash equally
type Canonicalizer interface {
	// Canonicalize marshals v and canonicalizes the result
	Canonicalize(v interface{}) ([]byte, error)
	// Digest returns the hex encoded sha256 of the canonical form of v
	Digest(v interface{}) (string, error)
}

type stdJSON struct{}

// NewJSON returns a JSON backed by encoding/json
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

type jcsCanonicalizer struct {
	json JSON
}

// NewCanonicalizer returns a Canonicalizer using the jcs transform
func NewCanonicalizer(j JSON) Canonicalizer {
	return &jcsCanonicalizer{json: j}
}

func (c *jcsCanonicalizer) Canonicalize(v interface{}) ([]byte, error) {
	raw, err := c.json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize json: %w", err)
	}
	return canonical, nil
}

func (c *jcsCanonicalizer) Digest(v interface{}) (string, error) {
	canonical, err := c.Canonicalize(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
