/* brackets.go
 * Contains the HTTP handlers for validating and running brackets
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bracket-bot/api/api"
	"bracket-bot/api/shared"
)

// maxBodyBytes caps the size of a request body
const maxBodyBytes = 1 << 20

// NewServer creates a server over a
func NewServer(a *api.API) *Server {
	return &Server{api: a}
}

// Routes returns the handler serving every endpoint of s
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/brackets/validate", s.ValidateHandler)
	mux.HandleFunc("/brackets/run", s.RunHandler)
	mux.HandleFunc("/teams", s.TeamsHandler)
	mux.HandleFunc("/tower", s.TowerHandler)
	return mux
}

// ValidateHandler HTTP endpoint that checks a bracket without playing it
// Preconditions: Receives a POST with a BracketRequest body
// Postconditions: Responds 200 with a ValidateResponse. An invalid bracket is reported in the body, not the status
func (s *Server) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req BracketRequest
	if !decodeRequest(w, r, &req, "request body must be JSON with a bracket field") {
		return
	}

	res := ValidateResponse{Valid: true}
	if err := s.api.ValidateBracket(req.Bracket); err != nil {
		res = ValidateResponse{Valid: false, Error: err.Error()}
	}
	writeJSON(w, http.StatusOK, res)
}

// RunHandler HTTP endpoint that plays a bracket
// Preconditions: Receives a POST with a BracketRequest body
// Postconditions: Responds 200 with a RunResponse, 400 if the bracket or its teams are invalid, or 500 if the bracket
// failed while being played
func (s *Server) RunHandler(w http.ResponseWriter, r *http.Request) {
	var req BracketRequest
	if !decodeRequest(w, r, &req, "request body must be JSON with a bracket field") {
		return
	}

	var lines []shared.MatchLine
	var err error
	if req.Metas {
		lines, err = s.api.RunBracketWithMetas(req.Bracket)
	} else {
		lines, err = s.api.RunBracket(req.Bracket)
	}
	if err != nil {
		if api.IsUserError(err) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		log.Println("bracket run failed:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "bracket could not be played"})
		return
	}

	res := RunResponse{Matches: lines}
	if len(lines) > 0 {
		res.Champion = lines[0].Winner
	}
	writeJSON(w, http.StatusOK, res)
}

// TeamsHandler HTTP endpoint that lists the registered teams
func (s *Server) TeamsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, TeamsResponse{Teams: s.api.GetTeams()})
}

// decodeRequest reads a POST body into dst, answering the request itself and returning false if it cannot
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any, usage string) bool {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return false
		}
		log.Printf("failed to decode %s request: %v", r.URL.Path, err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: usage})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("failed to write response:", err)
	}
}
