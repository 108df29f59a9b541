// Package statetoken demonstrates the binding-owned serialization contract
// spec.md assigns to persisted CatalogState: it encodes a CatalogState's
// selection and exclusion history as an opaque, gob-encoded byte sequence
// tagged with a session identifier, and decodes it back. The shape of the
// token is this package's own choice; the engine itself has no concept of
// tokens.
package statetoken

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/google/uuid"

	"github.com/tchupp/weave/engine/catalog"
)

// Token is the decoded form of a persisted CatalogState: its session
// identifier plus the selection/exclusion history needed to rebuild the
// state against a freshly-loaded Catalog.
type Token struct {
	Session    uuid.UUID
	Selections []catalog.Item
	Exclusions []catalog.Item
}

// payload is the gob-encoded wire shape; Token.Session is a fixed-size
// array and gob-friendly as-is, so payload exists only to give the two
// history slices stable field names across encode/decode.
type payload struct {
	Session    uuid.UUID
	Selections []string
	Exclusions []string
}

// New mints a Token for a fresh session with no history.
func New() Token {
	return Token{Session: uuid.New()}
}

// Encode serializes a Token to an opaque byte sequence.
func Encode(t Token) ([]byte, error) {
	var buf bytes.Buffer
	p := payload{Session: t.Session, Selections: t.Selections, Exclusions: t.Exclusions}
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("statetoken: encoding: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode. A malformed token is reported as a
// catalog.BadStateError so callers can handle it alongside the engine's
// own CatalogError variants uniformly.
func Decode(data []byte) (Token, error) {
	var p payload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return Token{}, &catalog.BadStateError{Reason: err.Error()}
	}
	return Token{Session: p.Session, Selections: p.Selections, Exclusions: p.Exclusions}, nil
}

// Apply replays a Token's history against catalog, returning the
// resulting CatalogState.
func Apply(c *catalog.Catalog, t Token) (*catalog.CatalogState, error) {
	state := catalog.NewCatalogState(c)
	_, state, err := state.Combinations(t.Selections, t.Exclusions)
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Capture builds a Token for session from a CatalogState's current
// history.
func Capture(session uuid.UUID, state *catalog.CatalogState) Token {
	return Token{Session: session, Selections: state.Selections(), Exclusions: state.Exclusions()}
}
