/* models.go
 * Contains the server types and the JSON bodies of the bracket endpoints
 */

package web

import (
	"bracket-bot/api/api"
	"bracket-bot/api/shared"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that handles bracket requests
type Server struct {
	api *api.API
}

// BracketRequest is the body of POST /brackets/validate and POST /brackets/run.
// Metas is ignored by the validate endpoint
type BracketRequest struct {
	Bracket string `json:"bracket"`
	Metas   bool   `json:"metas"`
}

// ValidateResponse is the body returned by POST /brackets/validate
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// RunResponse is the body returned by POST /brackets/run. Matches are newest first, so the final is matches[0]
type RunResponse struct {
	Matches  []shared.MatchLine `json:"matches"`
	Champion string             `json:"champion,omitempty"`
}

// ErrorResponse is returned with any non 2xx status
type ErrorResponse struct {
	Error string `json:"error"`
}

// TeamsResponse is the body returned by GET /teams
type TeamsResponse struct {
	Teams []string `json:"teams"`
}

// TowerRequest is the body of POST /tower
type TowerRequest struct {
	Challenger      string              `json:"challenger"`
	Opponents       []shared.TowerEntry `json:"opponents"`
	AvoidDuplicates bool                `json:"avoid_duplicates"`
}
