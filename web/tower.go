/* tower.go
 * Contains the HTTP handler for battle tower runs
 */

package web

import (
	"log"
	"net/http"

	"bracket-bot/api/api"
)

// TowerHandler HTTP endpoint that sends a challenger through a battle tower
// Preconditions: Receives a POST with a TowerRequest body. Opponents with no lives get api.DefaultTowerLives
// Postconditions: Responds 200 with the shared.TowerReport, 400 if the tower or its teams are invalid, or 500 if a
// battle failed
func (s *Server) TowerHandler(w http.ResponseWriter, r *http.Request) {
	var req TowerRequest
	if !decodeRequest(w, r, &req, "request body must be JSON with a challenger and opponents") {
		return
	}
	for i := range req.Opponents {
		if req.Opponents[i].Lives == 0 {
			req.Opponents[i].Lives = api.DefaultTowerLives
		}
	}

	report, err := s.api.RunTower(req.Challenger, req.Opponents, req.AvoidDuplicates)
	if err != nil {
		if api.IsUserError(err) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		log.Println("tower run failed:", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "tower could not be run"})
		return
	}
	writeJSON(w, http.StatusOK, report)
}
