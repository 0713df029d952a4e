// Package server provides an HTTP REST front end for running conworld game
// sessions. Each session owns its own freshly loaded world; command input
// is POSTed to the session and the narration lines from that cycle are
// returned. Sessions live in memory only; the engine does not persist
// world state.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rolph-recto/conworld/internal/cwd"
	"github.com/rolph-recto/conworld/internal/iodrv"
	"github.com/rolph-recto/conworld/internal/version"
)

// ConworldServer is an HTTP REST server that runs conworld game sessions.
// The zero value should not be used directly; call New to get one ready
// for use.
//
//	POST   /sessions                - start a new game session
//	GET    /sessions/{id}           - get info on a session
//	DELETE /sessions/{id}           - end a session
//	POST   /sessions/{id}/commands  - send one command, get the narration
//	GET    /info                    - get version info on the engine
type ConworldServer struct {
	router    chi.Router
	worldFile string

	mtx      sync.Mutex
	sessions map[uuid.UUID]*gameSession
}

// gameSession is one running game. Its mutex serializes command input; the
// engine is strictly turn-based and a session must never process two
// commands at once.
type gameSession struct {
	id      uuid.UUID
	driver  *iodrv.Driver
	mtx     sync.Mutex
	created time.Time
}

// New creates a ConworldServer that starts every session from the world in
// the CWD file at worldFile. The file is loaded once up front to validate
// it, then re-loaded per session so each session mutates its own world.
func New(worldFile string) (*ConworldServer, error) {
	if _, err := cwd.LoadWorldFile(worldFile); err != nil {
		return nil, fmt.Errorf("validating world file: %w", err)
	}

	cws := &ConworldServer{
		router:    chi.NewRouter(),
		worldFile: worldFile,
		sessions:  make(map[uuid.UUID]*gameSession),
	}
	cws.initHandlers()
	return cws, nil
}

func (cws *ConworldServer) initHandlers() {
	cws.router.Route("/sessions", func(r chi.Router) {
		r.Post("/", cws.handleSessionsPOST)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", cws.handleSessionGET)
			r.Delete("/", cws.handleSessionDELETE)
			r.Post("/commands", cws.handleCommandsPOST)
		})
	})
	cws.router.Get("/info", cws.handleInfoGET)
}

// ServeHTTP implements http.Handler.
func (cws *ConworldServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	cws.router.ServeHTTP(w, req)
}

// ServeForever listens on the given address for requests until the server
// fails.
func (cws *ConworldServer) ServeForever(addr string) error {
	log.Printf("INFO  serving conworld sessions on %s", addr)
	return http.ListenAndServe(addr, cws)
}

// POST /sessions: start a new game session.
func (cws *ConworldServer) handleSessionsPOST(w http.ResponseWriter, req *http.Request) {
	world, err := cwd.LoadWorldFile(cws.worldFile)
	if err != nil {
		jsonErr(w, http.StatusInternalServerError, "could not load world")
		log.Printf("ERROR loading world for new session: %v", err)
		return
	}

	sess := &gameSession{
		id:      uuid.New(),
		driver:  iodrv.New(world.World, world.Kernel),
		created: time.Now(),
	}

	// the opening narration is the starting room
	lines, err := sess.driver.Process("look")
	if err != nil {
		jsonErr(w, http.StatusInternalServerError, "world is misconfigured")
		log.Printf("ERROR opening look for session %s: %v", sess.id, err)
		return
	}

	cws.mtx.Lock()
	cws.sessions[sess.id] = sess
	cws.mtx.Unlock()

	log.Printf("INFO  created session %s", sess.id)
	jsonResponse(w, http.StatusCreated, SessionResponse{
		ID:      sess.id.String(),
		Created: sess.created,
		Output:  lines,
	})
}

// GET /sessions/{id}: report on a session.
func (cws *ConworldServer) handleSessionGET(w http.ResponseWriter, req *http.Request) {
	sess, ok := cws.findSession(chi.URLParam(req, "id"))
	if !ok {
		jsonErr(w, http.StatusNotFound, "no such session")
		return
	}

	jsonResponse(w, http.StatusOK, SessionResponse{
		ID:      sess.id.String(),
		Created: sess.created,
	})
}

// DELETE /sessions/{id}: end a session.
func (cws *ConworldServer) handleSessionDELETE(w http.ResponseWriter, req *http.Request) {
	id, err := uuid.Parse(chi.URLParam(req, "id"))
	if err != nil {
		jsonErr(w, http.StatusBadRequest, "malformed session ID")
		return
	}

	cws.mtx.Lock()
	_, ok := cws.sessions[id]
	delete(cws.sessions, id)
	cws.mtx.Unlock()

	if !ok {
		jsonErr(w, http.StatusNotFound, "no such session")
		return
	}
	log.Printf("INFO  ended session %s", id)
	w.WriteHeader(http.StatusNoContent)
}

// POST /sessions/{id}/commands: run one command in the session.
func (cws *ConworldServer) handleCommandsPOST(w http.ResponseWriter, req *http.Request) {
	sess, ok := cws.findSession(chi.URLParam(req, "id"))
	if !ok {
		jsonErr(w, http.StatusNotFound, "no such session")
		return
	}

	var cmdReq CommandRequest
	if err := json.NewDecoder(req.Body).Decode(&cmdReq); err != nil {
		jsonErr(w, http.StatusBadRequest, "malformed data in request")
		return
	}
	if cmdReq.Input == "" {
		jsonErr(w, http.StatusBadRequest, "input: property is empty or missing from request")
		return
	}

	sess.mtx.Lock()
	lines, err := sess.driver.Process(cmdReq.Input)
	sess.mtx.Unlock()
	if err != nil {
		jsonErr(w, http.StatusInternalServerError, "world is misconfigured")
		log.Printf("ERROR session %s input %q: %v", sess.id, cmdReq.Input, err)
		return
	}

	jsonResponse(w, http.StatusOK, CommandResponse{Output: lines})
}

// GET /info: version info.
func (cws *ConworldServer) handleInfoGET(w http.ResponseWriter, req *http.Request) {
	jsonResponse(w, http.StatusOK, InfoResponse{Version: version.Current})
}

func (cws *ConworldServer) findSession(rawID string) (*gameSession, bool) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, false
	}

	cws.mtx.Lock()
	defer cws.mtx.Unlock()
	sess, ok := cws.sessions[id]
	return sess, ok
}

func jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("ERROR writing response: %v", err)
	}
}

func jsonErr(w http.ResponseWriter, status int, msg string) {
	jsonResponse(w, status, ErrorResponse{Error: msg})
}
