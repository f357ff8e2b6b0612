package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
	"github.com/Dosada05/league-console/storage"
)

type SportService interface {
	CreateSport(ctx context.Context, input SportInput) (*models.Sport, error)
	GetSportByID(ctx context.Context, id int) (*models.Sport, error)
	GetAllSports(ctx context.Context) ([]models.Sport, error)
	UpdateSport(ctx context.Context, id int, input SportInput) (*models.Sport, error)
	DeleteSport(ctx context.Context, id int) error
	UploadSportIcon(ctx context.Context, id int, file io.Reader, contentType string) (*models.Sport, error)
}

type SportInput struct {
	Name string `json:"name"`
}

type sportService struct {
	sportRepo repositories.SportRepository
	uploader  storage.FileUploader
}

func NewSportService(sportRepo repositories.SportRepository, uploader storage.FileUploader) SportService {
	return &sportService{
		sportRepo: sportRepo,
		uploader:  uploader,
	}
}

func (s *sportService) CreateSport(ctx context.Context, input SportInput) (*models.Sport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	sport := &models.Sport{Name: name}
	if err := s.sportRepo.Create(ctx, sport); err != nil {
		if errors.Is(err, repositories.ErrSportNameConflict) {
			return nil, ErrSportNameConflict
		}
		return nil, fmt.Errorf("failed to create sport: %w", err)
	}
	return sport, nil
}

func (s *sportService) GetSportByID(ctx context.Context, id int) (*models.Sport, error) {
	sport, err := s.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to get sport by id %d: %w", id, err)
	}
	sport.IconURL = publicURL(sport.IconKey, s.uploader)
	return sport, nil
}

func (s *sportService) GetAllSports(ctx context.Context) ([]models.Sport, error) {
	sports, err := s.sportRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sports: %w", err)
	}
	for i := range sports {
		sports[i].IconURL = publicURL(sports[i].IconKey, s.uploader)
	}
	return sports, nil
}

func (s *sportService) UpdateSport(ctx context.Context, id int, input SportInput) (*models.Sport, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	sport := &models.Sport{ID: id, Name: name}
	err := s.sportRepo.Update(ctx, sport)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSportNotFound):
			return nil, ErrSportNotFound
		case errors.Is(err, repositories.ErrSportNameConflict):
			return nil, ErrSportNameConflict
		default:
			return nil, fmt.Errorf("failed to update sport %d: %w", id, err)
		}
	}
	return sport, nil
}

func (s *sportService) DeleteSport(ctx context.Context, id int) error {
	err := s.sportRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSportNotFound):
			return ErrSportNotFound
		case errors.Is(err, repositories.ErrSportInUse):
			return ErrSportInUse
		default:
			return fmt.Errorf("failed to delete sport %d: %w", id, err)
		}
	}
	return nil
}

func (s *sportService) UploadSportIcon(ctx context.Context, id int, file io.Reader, contentType string) (*models.Sport, error) {
	sport, err := s.GetSportByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := sport.IconKey
	key := fmt.Sprintf("sports/%d/icon%s", id, ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload sport icon: %w", err)
	}

	if err := s.sportRepo.UpdateIconKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save sport icon key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		// Old object cleanup failing is not fatal for the submission.
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	sport.IconKey = &result.Key
	sport.IconURL = publicURL(&result.Key, s.uploader)
	return sport, nil
}
