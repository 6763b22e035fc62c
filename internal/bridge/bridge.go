// Package bridge exposes the solver across a WebSocket connection — the
// idiomatic Go stand-in for the foreign-function boundary a host runtime
// would otherwise call across. Ambient glue, grounded on the teacher's
// internal/server + gorilla/websocket usage; not part of the tested core.
package bridge

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lox/ploengine/solver"
)

// Request is one JSON message a connected client sends. Method selects
// which solver entry point to invoke ("version", "evaluate", "equity" or
// "solve"); Params carries that
// call's own argument shape, deferred via json.RawMessage since each
// method's arguments differ.
type Request struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// Response is returned for every Request, echoing its ID.
type Response struct {
	ID     string      `json:"id"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type evaluateParams struct {
	Cards [5]byte `json:"cards"`
}

type equityParams struct {
	Hero  []byte `json:"hero"`
	Board []byte `json:"board"`
	Sims  uint32 `json:"sims"`
}

// Server holds the long-lived pieces a WebSocket handler needs: the
// upgrader and a logger. No solver state lives here — solver.Solve and
// friends are pure functions of their arguments.
type Server struct {
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

// New builds a Server that logs through the given logger.
func New(log zerolog.Logger) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
		log: log,
	}
}

// ServeHTTP upgrades the connection and serves JSON requests until the
// client disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("bridge: upgrade failed")
		return
	}
	defer conn.Close()

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn().Err(err).Msg("bridge: connection closed unexpectedly")
			}
			return
		}

		resp := s.handle(req)
		if err := conn.WriteJSON(resp); err != nil {
			s.log.Error().Err(err).Msg("bridge: write failed")
			return
		}
	}
}

func (s *Server) handle(req Request) Response {
	switch req.Method {
	case "version":
		return Response{ID: req.ID, Result: solver.Version()}

	case "evaluate":
		var p evaluateParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return errResponse(req.ID, err)
		}
		rank, err := solver.Evaluate(p.Cards)
		if err != nil {
			return errResponse(req.ID, err)
		}
		return Response{ID: req.ID, Result: rank}

	case "equity":
		var p equityParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return errResponse(req.ID, err)
		}
		v, err := solver.Equity(p.Hero, p.Board, p.Sims)
		if err != nil {
			return errResponse(req.ID, err)
		}
		return Response{ID: req.ID, Result: v}

	case "solve":
		var p solver.SolveParams
		if err := json.Unmarshal(req.Params, &p); err != nil {
			return errResponse(req.ID, err)
		}
		result, err := solver.Solve(p)
		if err != nil {
			return errResponse(req.ID, err)
		}
		return Response{ID: req.ID, Result: result}

	default:
		return Response{ID: req.ID, Error: "bridge: unknown method " + req.Method}
	}
}

func errResponse(id string, err error) Response {
	return Response{ID: id, Error: err.Error()}
}
