package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-console/models"
	"github.com/lib/pq"
)

var (
	ErrChampionshipNotFound     = errors.New("championship not found")
	ErrChampionshipNameConflict = errors.New("championship name conflict")
)

type ChampionshipRepository interface {
	Create(ctx context.Context, championship *models.Championship) error
	GetByID(ctx context.Context, id int) (*models.Championship, error)
	ListByModality(ctx context.Context, modalityID int) ([]models.Championship, error)
	GetAll(ctx context.Context) ([]models.Championship, error)
	Update(ctx context.Context, championship *models.Championship) error
	Delete(ctx context.Context, id int) error
	UpdateLogoKey(ctx context.Context, id int, key *string) error
	Count(ctx context.Context) (int, error)
}

// The criteria/phases/rankings columns are JSONB: the phase structure is
// variable-shape and only ever read and written whole.
type postgresChampionshipRepository struct {
	db *sql.DB
}

func NewPostgresChampionshipRepository(db *sql.DB) ChampionshipRepository {
	return &postgresChampionshipRepository{db: db}
}

const championshipColumns = `id, modality_id, name, description, display_tag, criteria, phases, rankings, logo_key, created_at`

func (r *postgresChampionshipRepository) Create(ctx context.Context, championship *models.Championship) error {
	criteria, err := marshalJSON(championship.Criteria)
	if err != nil {
		return err
	}
	phases, err := marshalJSON(championship.Phases)
	if err != nil {
		return err
	}
	rankings, err := marshalJSON(championship.Rankings)
	if err != nil {
		return err
	}

	query := `INSERT INTO championships (modality_id, name, description, display_tag, criteria, phases, rankings)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		championship.ModalityID, championship.Name, championship.Description,
		championship.DisplayTag, criteria, phases, rankings,
	).Scan(&championship.ID, &championship.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrChampionshipNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresChampionshipRepository) GetByID(ctx context.Context, id int) (*models.Championship, error) {
	query := `SELECT ` + championshipColumns + ` FROM championships WHERE id = $1`

	championship, err := scanChampionship(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionshipNotFound
		}
		return nil, err
	}
	return championship, nil
}

func scanChampionship(row rowScanner) (*models.Championship, error) {
	var championship models.Championship
	var criteria, phases, rankings []byte
	err := row.Scan(
		&championship.ID, &championship.ModalityID, &championship.Name,
		&championship.Description, &championship.DisplayTag,
		&criteria, &phases, &rankings,
		&championship.LogoKey, &championship.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(criteria, &championship.Criteria); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(phases, &championship.Phases); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(rankings, &championship.Rankings); err != nil {
		return nil, err
	}
	return &championship, nil
}

func (r *postgresChampionshipRepository) ListByModality(ctx context.Context, modalityID int) ([]models.Championship, error) {
	query := `SELECT ` + championshipColumns + ` FROM championships WHERE modality_id = $1 ORDER BY name ASC`
	return r.list(ctx, query, modalityID)
}

func (r *postgresChampionshipRepository) GetAll(ctx context.Context) ([]models.Championship, error) {
	query := `SELECT ` + championshipColumns + ` FROM championships ORDER BY name ASC`
	return r.list(ctx, query)
}

func (r *postgresChampionshipRepository) list(ctx context.Context, query string, args ...any) ([]models.Championship, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	championships := make([]models.Championship, 0)
	for rows.Next() {
		championship, err := scanChampionship(rows)
		if err != nil {
			return nil, err
		}
		championships = append(championships, *championship)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return championships, nil
}

// Update overwrites the whole document, last write wins. There is no
// version column; concurrent admin edits are rare enough that the last
// save simply sticks.
func (r *postgresChampionshipRepository) Update(ctx context.Context, championship *models.Championship) error {
	criteria, err := marshalJSON(championship.Criteria)
	if err != nil {
		return err
	}
	phases, err := marshalJSON(championship.Phases)
	if err != nil {
		return err
	}
	rankings, err := marshalJSON(championship.Rankings)
	if err != nil {
		return err
	}

	query := `UPDATE championships SET modality_id = $1, name = $2, description = $3,
	          display_tag = $4, criteria = $5, phases = $6, rankings = $7 WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		championship.ModalityID, championship.Name, championship.Description,
		championship.DisplayTag, criteria, phases, rankings, championship.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrChampionshipNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM championships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) UpdateLogoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE championships SET logo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionshipNotFound)
}

func (r *postgresChampionshipRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM championships`).Scan(&count)
	return count, err
}
