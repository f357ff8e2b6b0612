package models

import "time"

type Player struct {
	ID             int    `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Position       string `json:"position" db:"position"`
	BirthDate      string `json:"birth_date" db:"birth_date"`
	DocumentNumber string `json:"document_number" db:"document_number"`
	Biography      string `json:"biography" db:"biography"`

	// Trivia facts keep insertion order; display only.
	Trivia []string `json:"trivia" db:"trivia"`

	// Memberships are team-name snapshots taken when the player was added to
	// a squad, not live references.
	Memberships []string `json:"memberships" db:"memberships"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`

	PhotoKey *string `json:"-" db:"photo_key"`
	PhotoURL *string `json:"photo_url,omitempty" db:"-"`
}
