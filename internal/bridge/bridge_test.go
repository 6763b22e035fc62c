package bridge

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(zerolog.Nop())
}

func TestHandleVersion(t *testing.T) {
	s := newTestServer()
	resp := s.handle(Request{ID: "1", Method: "version"})
	assert.Empty(t, resp.Error)
	assert.Contains(t, resp.Result, "ploengine")
}

func TestHandleEvaluate(t *testing.T) {
	s := newTestServer()
	params, err := json.Marshal(evaluateParams{Cards: [5]byte{51, 47, 43, 39, 35}})
	require.NoError(t, err)

	resp := s.handle(Request{ID: "2", Method: "evaluate", Params: params})
	assert.Empty(t, resp.Error)
	assert.Equal(t, uint32(1), resp.Result)
}

func TestHandleEquity(t *testing.T) {
	s := newTestServer()
	params, err := json.Marshal(equityParams{Hero: []byte{51, 47, 43, 39, 35}, Sims: 200})
	require.NoError(t, err)

	resp := s.handle(Request{ID: "3", Method: "equity", Params: params})
	assert.Empty(t, resp.Error)
	v, ok := resp.Result.(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestHandleUnknownMethod(t *testing.T) {
	s := newTestServer()
	resp := s.handle(Request{ID: "4", Method: "bogus"})
	assert.NotEmpty(t, resp.Error)
}

func TestHandleEvaluateBadParams(t *testing.T) {
	s := newTestServer()
	resp := s.handle(Request{ID: "5", Method: "evaluate", Params: json.RawMessage(`{"cards": "not an array"}`)})
	assert.NotEmpty(t, resp.Error)
}
