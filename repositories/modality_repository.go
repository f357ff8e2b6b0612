package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-console/models"
	"github.com/lib/pq"
)

var (
	ErrModalityNotFound     = errors.New("modality not found")
	ErrModalityNameConflict = errors.New("modality name conflict")
	ErrModalityInUse        = errors.New("modality cannot be deleted as it is in use")
)

type ModalityRepository interface {
	Create(ctx context.Context, modality *models.Modality) error
	GetByID(ctx context.Context, id int) (*models.Modality, error)
	ListBySport(ctx context.Context, sportID int) ([]models.Modality, error)
	GetAll(ctx context.Context) ([]models.Modality, error)
	Update(ctx context.Context, modality *models.Modality) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresModalityRepository struct {
	db *sql.DB
}

func NewPostgresModalityRepository(db *sql.DB) ModalityRepository {
	return &postgresModalityRepository{db: db}
}

func (r *postgresModalityRepository) Create(ctx context.Context, modality *models.Modality) error {
	query := `INSERT INTO modalities (sport_id, name, gender) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, modality.SportID, modality.Name, modality.Gender).
		Scan(&modality.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrModalityNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresModalityRepository) GetByID(ctx context.Context, id int) (*models.Modality, error) {
	query := `SELECT id, sport_id, name, gender FROM modalities WHERE id = $1`

	var modality models.Modality
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&modality.ID, &modality.SportID, &modality.Name, &modality.Gender)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrModalityNotFound
		}
		return nil, err
	}
	return &modality, nil
}

func (r *postgresModalityRepository) ListBySport(ctx context.Context, sportID int) ([]models.Modality, error) {
	query := `SELECT id, sport_id, name, gender FROM modalities WHERE sport_id = $1 ORDER BY name ASC`
	return r.list(ctx, query, sportID)
}

func (r *postgresModalityRepository) GetAll(ctx context.Context) ([]models.Modality, error) {
	query := `SELECT id, sport_id, name, gender FROM modalities ORDER BY name ASC`
	return r.list(ctx, query)
}

func (r *postgresModalityRepository) list(ctx context.Context, query string, args ...any) ([]models.Modality, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modalities := make([]models.Modality, 0)
	for rows.Next() {
		var modality models.Modality
		if err := rows.Scan(&modality.ID, &modality.SportID, &modality.Name, &modality.Gender); err != nil {
			return nil, err
		}
		modalities = append(modalities, modality)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return modalities, nil
}

func (r *postgresModalityRepository) Update(ctx context.Context, modality *models.Modality) error {
	query := `UPDATE modalities SET sport_id = $1, name = $2, gender = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, modality.SportID, modality.Name, modality.Gender, modality.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrModalityNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrModalityNotFound)
}

func (r *postgresModalityRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM modalities WHERE id = $1`, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrModalityInUse
		}
		return err
	}
	return checkAffectedRows(result, ErrModalityNotFound)
}

func (r *postgresModalityRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM modalities`).Scan(&count)
	return count, err
}
