package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-console/models"
	"github.com/lib/pq"
)

var (
	ErrSponsorNotFound     = errors.New("sponsor not found")
	ErrSponsorNameConflict = errors.New("sponsor name conflict")
)

type SponsorRepository interface {
	Create(ctx context.Context, sponsor *models.Sponsor) error
	GetByID(ctx context.Context, id int) (*models.Sponsor, error)
	GetAll(ctx context.Context) ([]models.Sponsor, error)
	Update(ctx context.Context, sponsor *models.Sponsor) error
	Delete(ctx context.Context, id int) error
	UpdateLogoKey(ctx context.Context, id int, key *string) error
}

type postgresSponsorRepository struct {
	db *sql.DB
}

func NewPostgresSponsorRepository(db *sql.DB) SponsorRepository {
	return &postgresSponsorRepository{db: db}
}

func (r *postgresSponsorRepository) Create(ctx context.Context, sponsor *models.Sponsor) error {
	query := `INSERT INTO sponsors (name, website) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, sponsor.Name, sponsor.Website).Scan(&sponsor.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrSponsorNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresSponsorRepository) GetByID(ctx context.Context, id int) (*models.Sponsor, error) {
	query := `SELECT id, name, website, logo_key FROM sponsors WHERE id = $1`

	var sponsor models.Sponsor
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&sponsor.ID, &sponsor.Name, &sponsor.Website, &sponsor.LogoKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSponsorNotFound
		}
		return nil, err
	}
	return &sponsor, nil
}

func (r *postgresSponsorRepository) GetAll(ctx context.Context) ([]models.Sponsor, error) {
	query := `SELECT id, name, website, logo_key FROM sponsors ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sponsors := make([]models.Sponsor, 0)
	for rows.Next() {
		var sponsor models.Sponsor
		if err := rows.Scan(&sponsor.ID, &sponsor.Name, &sponsor.Website, &sponsor.LogoKey); err != nil {
			return nil, err
		}
		sponsors = append(sponsors, sponsor)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sponsors, nil
}

func (r *postgresSponsorRepository) Update(ctx context.Context, sponsor *models.Sponsor) error {
	query := `UPDATE sponsors SET name = $1, website = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, sponsor.Name, sponsor.Website, sponsor.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrSponsorNameConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrSponsorNotFound)
}

func (r *postgresSponsorRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sponsors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSponsorNotFound)
}

func (r *postgresSponsorRepository) UpdateLogoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE sponsors SET logo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSponsorNotFound)
}
