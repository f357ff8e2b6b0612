package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/Dosada05/league-console/models"
)

func newModalityRepoMock(t *testing.T) (ModalityRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresModalityRepository(db), mock
}

func TestModalityCreate(t *testing.T) {
	repo, mock := newModalityRepoMock(t)

	mock.ExpectQuery(`INSERT INTO modalities`).
		WithArgs(1, "Futsal Masculino", "male").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	modality := &models.Modality{SportID: 1, Name: "Futsal Masculino", Gender: "male"}
	if err := repo.Create(context.Background(), modality); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if modality.ID != 7 {
		t.Fatalf("expected returned id 7, got %d", modality.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestModalityCreateNameConflict(t *testing.T) {
	repo, mock := newModalityRepoMock(t)

	mock.ExpectQuery(`INSERT INTO modalities`).
		WithArgs(1, "Futsal Masculino", "male").
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &models.Modality{SportID: 1, Name: "Futsal Masculino", Gender: "male"})
	if !errors.Is(err, ErrModalityNameConflict) {
		t.Fatalf("expected ErrModalityNameConflict, got %v", err)
	}
}

func TestModalityGetByIDNotFound(t *testing.T) {
	repo, mock := newModalityRepoMock(t)

	mock.ExpectQuery(`SELECT id, sport_id, name, gender FROM modalities WHERE id = \$1`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sport_id", "name", "gender"}))

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrModalityNotFound) {
		t.Fatalf("expected ErrModalityNotFound, got %v", err)
	}
}

func TestModalityListBySport(t *testing.T) {
	repo, mock := newModalityRepoMock(t)

	rows := sqlmock.NewRows([]string{"id", "sport_id", "name", "gender"}).
		AddRow(1, 3, "Basquete Feminino", "female").
		AddRow(2, 3, "Basquete Masculino", "male")
	mock.ExpectQuery(`SELECT id, sport_id, name, gender FROM modalities WHERE sport_id = \$1`).
		WithArgs(3).
		WillReturnRows(rows)

	modalities, err := repo.ListBySport(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListBySport: %v", err)
	}
	if len(modalities) != 2 {
		t.Fatalf("expected 2 modalities, got %d", len(modalities))
	}
	if modalities[0].Name != "Basquete Feminino" || modalities[1].Gender != "male" {
		t.Fatalf("unexpected rows %+v", modalities)
	}
}

func TestModalityUpdateNotFound(t *testing.T) {
	repo, mock := newModalityRepoMock(t)

	mock.ExpectExec(`UPDATE modalities SET`).
		WithArgs(1, "Volei", "mixed", 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Modality{ID: 9, SportID: 1, Name: "Volei", Gender: "mixed"})
	if !errors.Is(err, ErrModalityNotFound) {
		t.Fatalf("expected ErrModalityNotFound, got %v", err)
	}
}

func TestModalityDeleteInUse(t *testing.T) {
	repo, mock := newModalityRepoMock(t)

	mock.ExpectExec(`DELETE FROM modalities WHERE id = \$1`).
		WithArgs(5).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Delete(context.Background(), 5)
	if !errors.Is(err, ErrModalityInUse) {
		t.Fatalf("expected ErrModalityInUse, got %v", err)
	}
}

func TestModalityCount(t *testing.T) {
	repo, mock := newModalityRepoMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM modalities`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 12 {
		t.Fatalf("expected 12, got %d", count)
	}
}
