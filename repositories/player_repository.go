package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-console/models"
	"github.com/lib/pq"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetAll(ctx context.Context) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
	UpdatePhotoKey(ctx context.Context, id int, key *string) error
	Count(ctx context.Context) (int, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, name, position, birth_date, document_number, biography, trivia, memberships, photo_key, created_at`

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `INSERT INTO players (name, position, birth_date, document_number, biography, trivia, memberships)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		player.Name, player.Position, player.BirthDate, player.DocumentNumber,
		player.Biography, pq.Array(player.Trivia), pq.Array(player.Memberships),
	).Scan(&player.ID, &player.CreatedAt)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	player, err := scanPlayer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var player models.Player
	err := row.Scan(
		&player.ID, &player.Name, &player.Position, &player.BirthDate,
		&player.DocumentNumber, &player.Biography,
		pq.Array(&player.Trivia), pq.Array(&player.Memberships),
		&player.PhotoKey, &player.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *postgresPlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `UPDATE players SET name = $1, position = $2, birth_date = $3, document_number = $4,
	          biography = $5, trivia = $6, memberships = $7 WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		player.Name, player.Position, player.BirthDate, player.DocumentNumber,
		player.Biography, pq.Array(player.Trivia), pq.Array(player.Memberships), player.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

// Delete removes the player only; squads referencing the id keep it. The
// team service tolerates dangling squad entries when hydrating players.
func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdatePhotoKey(ctx context.Context, id int, key *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET photo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count)
	return count, err
}
