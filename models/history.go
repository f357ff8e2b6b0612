package models

import "time"

// HistoricRecord is one yearly results entry ("Champions 2019") with its
// ordered placings. No computation; pure data entry.
type HistoricRecord struct {
	ID        int            `json:"id" db:"id"`
	Year      int            `json:"year" db:"year"`
	Title     string         `json:"title" db:"title"`
	Placings  []RankingEntry `json:"placings" db:"-"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
