package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-console/models"
)

var ErrHistoricRecordNotFound = errors.New("historic record not found")

type HistoryRepository interface {
	Create(ctx context.Context, record *models.HistoricRecord) error
	GetByID(ctx context.Context, id int) (*models.HistoricRecord, error)
	GetAll(ctx context.Context) ([]models.HistoricRecord, error)
	Update(ctx context.Context, record *models.HistoricRecord) error
	Delete(ctx context.Context, id int) error
}

type postgresHistoryRepository struct {
	db *sql.DB
}

func NewPostgresHistoryRepository(db *sql.DB) HistoryRepository {
	return &postgresHistoryRepository{db: db}
}

func (r *postgresHistoryRepository) Create(ctx context.Context, record *models.HistoricRecord) error {
	placings, err := marshalJSON(record.Placings)
	if err != nil {
		return err
	}

	query := `INSERT INTO historic_records (year, title, placings) VALUES ($1, $2, $3) RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query, record.Year, record.Title, placings).
		Scan(&record.ID, &record.CreatedAt)
}

func (r *postgresHistoryRepository) GetByID(ctx context.Context, id int) (*models.HistoricRecord, error) {
	query := `SELECT id, year, title, placings, created_at FROM historic_records WHERE id = $1`

	record, err := scanHistoricRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHistoricRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

func scanHistoricRecord(row rowScanner) (*models.HistoricRecord, error) {
	var record models.HistoricRecord
	var placings []byte
	err := row.Scan(&record.ID, &record.Year, &record.Title, &placings, &record.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := unmarshalJSON(placings, &record.Placings); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *postgresHistoryRepository) GetAll(ctx context.Context) ([]models.HistoricRecord, error) {
	query := `SELECT id, year, title, placings, created_at FROM historic_records ORDER BY year DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.HistoricRecord, 0)
	for rows.Next() {
		record, err := scanHistoricRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *postgresHistoryRepository) Update(ctx context.Context, record *models.HistoricRecord) error {
	placings, err := marshalJSON(record.Placings)
	if err != nil {
		return err
	}

	query := `UPDATE historic_records SET year = $1, title = $2, placings = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, record.Year, record.Title, placings, record.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrHistoricRecordNotFound)
}

func (r *postgresHistoryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM historic_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrHistoricRecordNotFound)
}
