package statetoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchupp/weave/engine/catalog"
	"github.com/tchupp/weave/internal/statetoken"
)

func buildCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.NewCatalogBuilder().
		AddItems("shirts", "red-shirt", "blue-shirt").
		AddItems("pants", "jeans", "slacks").
		Build()
	require.NoError(t, err)
	return c
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	token := statetoken.New()
	token.Selections = []catalog.Item{"red-shirt"}
	token.Exclusions = []catalog.Item{"jeans"}

	data, err := statetoken.Encode(token)
	require.NoError(t, err)

	decoded, err := statetoken.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, token.Session, decoded.Session)
	assert.Equal(t, token.Selections, decoded.Selections)
	assert.Equal(t, token.Exclusions, decoded.Exclusions)
}

func TestDecodeMalformedTokenIsBadState(t *testing.T) {
	_, err := statetoken.Decode([]byte("not a gob stream"))
	require.Error(t, err)
	assert.True(t, catalog.IsBadStateErr(err))
}

func TestApplyReplaysHistory(t *testing.T) {
	c := buildCatalog(t)
	token := statetoken.New()
	token.Selections = []catalog.Item{"red-shirt"}

	state, err := statetoken.Apply(c, token)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Item{"red-shirt"}, state.Selections())
}

func TestCaptureRoundTripsThroughApply(t *testing.T) {
	c := buildCatalog(t)
	state := catalog.NewCatalogState(c)
	_, state, err := state.Combinations([]catalog.Item{"red-shirt"}, []catalog.Item{"jeans"})
	require.NoError(t, err)

	session := statetoken.New().Session
	token := statetoken.Capture(session, state)

	replayed, err := statetoken.Apply(c, token)
	require.NoError(t, err)
	assert.Equal(t, state.Selections(), replayed.Selections())
	assert.Equal(t, state.Exclusions(), replayed.Exclusions())
}
