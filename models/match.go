package models

import "time"

// Match is a manually entered fixture. Scores are free strings typed by the
// admin; an empty score on either side means the match has not been scored.
// Date and Time are kept as "2006-01-02" / "15:04" strings so the composite
// (date, time) ordering is a plain lexicographic sort.
type Match struct {
	ID             int     `json:"id" db:"id"`
	ChampionshipID *int    `json:"championship_id,omitempty" db:"championship_id"`
	HomeTeamID     *int    `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID     *int    `json:"away_team_id,omitempty" db:"away_team_id"`
	HomeScore      string  `json:"home_score" db:"home_score"`
	AwayScore      string  `json:"away_score" db:"away_score"`
	Date           string  `json:"date" db:"date"`
	Time           string  `json:"time" db:"time"`
	Venue          string  `json:"venue" db:"venue"`
	PhaseLabel     string  `json:"phase_label" db:"phase_label"`
	TopScorer      *string `json:"top_scorer,omitempty" db:"top_scorer"`
	MVP            *string `json:"mvp,omitempty" db:"mvp"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`

	ResultSheetKey *string `json:"-" db:"result_sheet_key"`
	ResultSheetURL *string `json:"result_sheet_url,omitempty" db:"-"`
}

// Scored reports whether both sides carry a non-empty score.
func (m Match) Scored() bool {
	return m.HomeScore != "" && m.AwayScore != ""
}
