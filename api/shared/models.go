/* models.go
 * This file contain the structs that are shared between sub packages and the front-ends
 */

package shared

// TeamSpec describes a team by the number of members it fields of each attribute kind, in kind order
// FIRE, GRASS, WATER, GHOST, NORMAL
type TeamSpec struct {
	Name   string `json:"name"`
	Counts [5]int `json:"counts"`
}

// MatchLine is one played match as reported to users
type MatchLine struct {
	Team1  string   `json:"team1"`
	Team2  string   `json:"team2"`
	Winner string   `json:"winner"`
	Metas  []string `json:"metas,omitempty"`
}


// TowerEntry is an opponent entered into a battle tower with the lives it starts with
type TowerEntry struct {
	Name  string `json:"name"`
	Lives int    `json:"lives"`
}

// TowerRound is one battle fought in a battle tower
type TowerRound struct {
	Challenger string `json:"challenger"`
	Opponent   string `json:"opponent"`
	Result     string `json:"result"`
	LivesLeft  int    `json:"lives_left"`
}

// TowerReport is the outcome of a full battle tower run
type TowerReport struct {
	Rounds     []TowerRound `json:"rounds"`
	Victorious bool         `json:"victorious"`
}
