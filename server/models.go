package server

import "time"

// CommandRequest is the JSON body of a request to run a command in a
// session.
type CommandRequest struct {
	Input string `json:"input"`
}

// CommandResponse is the JSON body returned from running a command. Output
// holds the narration lines produced by that command, in order.
type CommandResponse struct {
	Output []string `json:"output"`
}

// SessionResponse is the JSON body describing a game session. Output is
// only set when the session is first created, and holds the opening
// narration.
type SessionResponse struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Output  []string  `json:"output,omitempty"`
}

// InfoResponse is the JSON body returned from the info endpoint.
type InfoResponse struct {
	Version string `json:"version"`
}

// ErrorResponse is the JSON body returned with any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
