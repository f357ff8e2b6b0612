package models

// Modality is a sport variant ("Basketball 5x5 Male"). Teams and
// championships hang off a modality, never off a sport directly.
type Modality struct {
	ID      int    `json:"id" db:"id"`
	SportID int    `json:"sport_id" db:"sport_id"`
	Name    string `json:"name" db:"name"`
	Gender  string `json:"gender" db:"gender"`

	Sport *Sport `json:"sport,omitempty" db:"-"`
}
