package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-console/models"
)

var ErrNewsNotFound = errors.New("news item not found")

type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, id int) (*models.News, error)
	GetAll(ctx context.Context) ([]models.News, error)
	Update(ctx context.Context, news *models.News) error
	Delete(ctx context.Context, id int) error
	UpdateCoverKey(ctx context.Context, id int, key *string) error
	Count(ctx context.Context) (int, error)
}

type postgresNewsRepository struct {
	db *sql.DB
}

func NewPostgresNewsRepository(db *sql.DB) NewsRepository {
	return &postgresNewsRepository{db: db}
}

const newsColumns = `id, title, body, published_at, cover_key, created_at`

func (r *postgresNewsRepository) Create(ctx context.Context, news *models.News) error {
	query := `INSERT INTO news (title, body, published_at) VALUES ($1, $2, $3) RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query, news.Title, news.Body, news.PublishedAt).
		Scan(&news.ID, &news.CreatedAt)
}

func (r *postgresNewsRepository) GetByID(ctx context.Context, id int) (*models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1`

	var news models.News
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&news.ID, &news.Title, &news.Body, &news.PublishedAt, &news.CoverKey, &news.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

func (r *postgresNewsRepository) GetAll(ctx context.Context) ([]models.News, error) {
	query := `SELECT ` + newsColumns + ` FROM news ORDER BY published_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.News, 0)
	for rows.Next() {
		var news models.News
		if err := rows.Scan(&news.ID, &news.Title, &news.Body, &news.PublishedAt, &news.CoverKey, &news.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, news)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresNewsRepository) Update(ctx context.Context, news *models.News) error {
	query := `UPDATE news SET title = $1, body = $2, published_at = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, news.Title, news.Body, news.PublishedAt, news.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrNewsNotFound)
}

func (r *postgresNewsRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrNewsNotFound)
}

func (r *postgresNewsRepository) UpdateCoverKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE news SET cover_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrNewsNotFound)
}

func (r *postgresNewsRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news`).Scan(&count)
	return count, err
}
