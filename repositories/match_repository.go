package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-console/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	GetAll(ctx context.Context) ([]models.Match, error)
	ListByChampionship(ctx context.Context, championshipID int) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
	UpdateResultSheetKey(ctx context.Context, id int, key *string) error
	Count(ctx context.Context) (int, error)
	CountUnscored(ctx context.Context) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `id, championship_id, home_team_id, away_team_id, home_score, away_score,
	date, time, venue, phase_label, top_scorer, mvp, result_sheet_key, created_at`

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `INSERT INTO matches (championship_id, home_team_id, away_team_id, home_score, away_score,
	          date, time, venue, phase_label, top_scorer, mvp)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		match.ChampionshipID, match.HomeTeamID, match.AwayTeamID,
		match.HomeScore, match.AwayScore, match.Date, match.Time,
		match.Venue, match.PhaseLabel, match.TopScorer, match.MVP,
	).Scan(&match.ID, &match.CreatedAt)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	match, err := scanMatch(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func scanMatch(row rowScanner) (*models.Match, error) {
	var match models.Match
	err := row.Scan(
		&match.ID, &match.ChampionshipID, &match.HomeTeamID, &match.AwayTeamID,
		&match.HomeScore, &match.AwayScore, &match.Date, &match.Time,
		&match.Venue, &match.PhaseLabel, &match.TopScorer, &match.MVP,
		&match.ResultSheetKey, &match.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *postgresMatchRepository) GetAll(ctx context.Context) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY date ASC, time ASC`
	return r.list(ctx, query)
}

func (r *postgresMatchRepository) ListByChampionship(ctx context.Context, championshipID int) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE championship_id = $1 ORDER BY date ASC, time ASC`
	return r.list(ctx, query, championshipID)
}

func (r *postgresMatchRepository) list(ctx context.Context, query string, args ...any) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `UPDATE matches SET championship_id = $1, home_team_id = $2, away_team_id = $3,
	          home_score = $4, away_score = $5, date = $6, time = $7, venue = $8,
	          phase_label = $9, top_scorer = $10, mvp = $11 WHERE id = $12`

	result, err := r.db.ExecContext(ctx, query,
		match.ChampionshipID, match.HomeTeamID, match.AwayTeamID,
		match.HomeScore, match.AwayScore, match.Date, match.Time,
		match.Venue, match.PhaseLabel, match.TopScorer, match.MVP, match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateResultSheetKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE matches SET result_sheet_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	return count, err
}

func (r *postgresMatchRepository) CountUnscored(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM matches WHERE home_score = '' OR away_score = ''`,
	).Scan(&count)
	return count, err
}
