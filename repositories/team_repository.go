package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-console/models"
	"github.com/lib/pq"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name conflict")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListByModality(ctx context.Context, modalityID int) ([]models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int) error
	UpdateLogoKey(ctx context.Context, id int, key *string) error
	Count(ctx context.Context) (int, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

const teamColumns = `id, modality_id, name, squad, tax_id, responsible_name, responsible_id, phone, logo_key, created_at`

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `INSERT INTO teams (modality_id, name, squad, tax_id, responsible_name, responsible_id, phone)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		team.ModalityID, team.Name, pq.Array(team.Squad),
		team.TaxID, team.ResponsibleName, team.ResponsibleID, team.Phone,
	).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrTeamNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	team, err := scanTeam(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var team models.Team
	var squad pq.Int64Array
	err := row.Scan(
		&team.ID, &team.ModalityID, &team.Name, &squad,
		&team.TaxID, &team.ResponsibleName, &team.ResponsibleID, &team.Phone,
		&team.LogoKey, &team.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	team.Squad = make([]int, len(squad))
	for i, id := range squad {
		team.Squad[i] = int(id)
	}
	return &team, nil
}

func (r *postgresTeamRepository) ListByModality(ctx context.Context, modalityID int) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE modality_id = $1 ORDER BY name ASC`
	return r.list(ctx, query, modalityID)
}

func (r *postgresTeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY name ASC`
	return r.list(ctx, query)
}

func (r *postgresTeamRepository) list(ctx context.Context, query string, args ...any) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET modality_id = $1, name = $2, squad = $3, tax_id = $4,
	          responsible_name = $5, responsible_id = $6, phone = $7 WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		team.ModalityID, team.Name, pq.Array(team.Squad),
		team.TaxID, team.ResponsibleName, team.ResponsibleID, team.Phone, team.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrTeamNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

// Delete removes the team only. Matches and table rows referencing it keep
// their snapshots; the match lister substitutes a placeholder for the id.
func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateLogoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE teams SET logo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}
