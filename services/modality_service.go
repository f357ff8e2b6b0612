package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
)

type ModalityService interface {
	CreateModality(ctx context.Context, input ModalityInput) (*models.Modality, error)
	GetModalityByID(ctx context.Context, id int) (*models.Modality, error)
	ListModalities(ctx context.Context, sportID *int) ([]models.Modality, error)
	UpdateModality(ctx context.Context, id int, input ModalityInput) (*models.Modality, error)
	DeleteModality(ctx context.Context, id int) error
}

type ModalityInput struct {
	SportID int    `json:"sport_id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
}

type modalityService struct {
	modalityRepo repositories.ModalityRepository
	resolver     ReferenceResolver
}

func NewModalityService(modalityRepo repositories.ModalityRepository, resolver ReferenceResolver) ModalityService {
	return &modalityService{
		modalityRepo: modalityRepo,
		resolver:     resolver,
	}
}

func (s *modalityService) CreateModality(ctx context.Context, input ModalityInput) (*models.Modality, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	// Parent sport must exist before anything is written.
	sport, err := s.resolver.Sport(ctx, input.SportID)
	if err != nil {
		return nil, err
	}

	modality := &models.Modality{
		SportID: sport.ID,
		Name:    name,
		Gender:  strings.TrimSpace(input.Gender),
	}
	if err := s.modalityRepo.Create(ctx, modality); err != nil {
		if errors.Is(err, repositories.ErrModalityNameConflict) {
			return nil, ErrModalityNameConflict
		}
		return nil, fmt.Errorf("failed to create modality: %w", err)
	}
	modality.Sport = sport
	return modality, nil
}

func (s *modalityService) GetModalityByID(ctx context.Context, id int) (*models.Modality, error) {
	modality, err := s.modalityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrModalityNotFound) {
			return nil, ErrModalityNotFound
		}
		return nil, fmt.Errorf("failed to get modality by id %d: %w", id, err)
	}
	return modality, nil
}

func (s *modalityService) ListModalities(ctx context.Context, sportID *int) ([]models.Modality, error) {
	var (
		modalities []models.Modality
		err        error
	)
	if sportID != nil {
		modalities, err = s.modalityRepo.ListBySport(ctx, *sportID)
	} else {
		modalities, err = s.modalityRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list modalities: %w", err)
	}
	return modalities, nil
}

func (s *modalityService) UpdateModality(ctx context.Context, id int, input ModalityInput) (*models.Modality, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.resolver.Sport(ctx, input.SportID); err != nil {
		return nil, err
	}

	modality := &models.Modality{
		ID:      id,
		SportID: input.SportID,
		Name:    name,
		Gender:  strings.TrimSpace(input.Gender),
	}
	err := s.modalityRepo.Update(ctx, modality)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrModalityNotFound):
			return nil, ErrModalityNotFound
		case errors.Is(err, repositories.ErrModalityNameConflict):
			return nil, ErrModalityNameConflict
		default:
			return nil, fmt.Errorf("failed to update modality %d: %w", id, err)
		}
	}
	return modality, nil
}

func (s *modalityService) DeleteModality(ctx context.Context, id int) error {
	err := s.modalityRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrModalityNotFound):
			return ErrModalityNotFound
		case errors.Is(err, repositories.ErrModalityInUse):
			return ErrModalityInUse
		default:
			return fmt.Errorf("failed to delete modality %d: %w", id, err)
		}
	}
	return nil
}
