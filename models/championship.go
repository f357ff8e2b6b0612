package models

import "time"

type PhaseType string

const (
	PhaseRoundRobin PhaseType = "round_robin"
	PhaseGrouped    PhaseType = "grouped"
	PhaseKnockout   PhaseType = "knockout"
)

type CriterionType string

const (
	CriterionText   CriterionType = "text"
	CriterionNumber CriterionType = "number"
)

// Criterion is a championship-scoped scoring column ("wins", "points").
// Declared once and shared by every round-robin and group table row.
type Criterion struct {
	Key   string        `json:"key"`
	Label string        `json:"label"`
	Type  CriterionType `json:"type"`
}

// Reserved row keys present in every materialized table row alongside the
// championship's criterion keys.
const (
	RowKeyPosition = "position"
	RowKeyTeamName = "team_name"
	RowKeyTeamLogo = "team_logo"
)

// TableRow is a sparse mapping from row keys (reserved keys plus criterion
// keys) to manually entered values. Values are strings or numbers as typed
// by the admin; an empty string means "not filled in yet".
type TableRow map[string]any

// TeamSlot is a denormalized snapshot of a team's display fields, copied at
// selection time. Later edits to the team do not propagate here.
type TeamSlot struct {
	TeamID int    `json:"team_id,omitempty"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
}

type Group struct {
	Name  string     `json:"name"`
	Table []TableRow `json:"table"`
}

type Matchup struct {
	Home TeamSlot `json:"home"`
	Away TeamSlot `json:"away"`
}

// Stage is one named knockout round ("Quarter-finals") holding head-to-head
// matchups in bracket order.
type Stage struct {
	Name     string    `json:"name"`
	Matchups []Matchup `json:"matchups"`
}

// Phase is one stage of a championship's competitive format. Exactly one of
// Table, Groups, Stages is meaningful, selected by Type. Switching Type does
// NOT clear the other shapes' data: an admin flipping back gets their edits
// back. Stale sub-structures are simply ignored by readers.
type Phase struct {
	Name   string     `json:"name"`
	Type   PhaseType  `json:"type"`
	Table  []TableRow `json:"table,omitempty"`
	Groups []Group    `json:"groups,omitempty"`
	Stages []Stage    `json:"stages,omitempty"`
}

// RankingEntry is one (label, value, subject) tuple attached to a
// championship ranking or a historic record. Pure data entry.
type RankingEntry struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Subject string `json:"subject"`
}

type Championship struct {
	ID          int    `json:"id" db:"id"`
	ModalityID  int    `json:"modality_id" db:"modality_id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`

	// DisplayTag is the single "criterion" tag used for list filtering; it is
	// unrelated to the Criteria scoring columns below.
	DisplayTag string `json:"display_tag" db:"display_tag"`

	Criteria []Criterion    `json:"criteria" db:"-"`
	Phases   []Phase        `json:"phases" db:"-"`
	Rankings []RankingEntry `json:"rankings" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`

	Modality *Modality `json:"modality,omitempty" db:"-"`
}
