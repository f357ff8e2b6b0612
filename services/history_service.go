package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
)

type HistoryService interface {
	CreateRecord(ctx context.Context, input HistoricRecordInput) (*models.HistoricRecord, error)
	GetRecordByID(ctx context.Context, id int) (*models.HistoricRecord, error)
	GetAllRecords(ctx context.Context) ([]models.HistoricRecord, error)
	UpdateRecord(ctx context.Context, id int, input HistoricRecordInput) (*models.HistoricRecord, error)
	DeleteRecord(ctx context.Context, id int) error
}

type HistoricRecordInput struct {
	Year     int                   `json:"year"`
	Title    string                `json:"title"`
	Placings []models.RankingEntry `json:"placings"`
}

type historyService struct {
	historyRepo repositories.HistoryRepository
}

func NewHistoryService(historyRepo repositories.HistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

func (s *historyService) validate(input HistoricRecordInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrNameRequired
	}
	if input.Year <= 0 {
		return ErrInvalidYear
	}
	return nil
}

func (s *historyService) CreateRecord(ctx context.Context, input HistoricRecordInput) (*models.HistoricRecord, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	record := &models.HistoricRecord{
		Year:     input.Year,
		Title:    strings.TrimSpace(input.Title),
		Placings: input.Placings,
	}
	if record.Placings == nil {
		record.Placings = []models.RankingEntry{}
	}
	if err := s.historyRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create historic record: %w", err)
	}
	return record, nil
}

func (s *historyService) GetRecordByID(ctx context.Context, id int) (*models.HistoricRecord, error) {
	record, err := s.historyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrHistoricRecordNotFound) {
			return nil, ErrHistoricRecordNotFound
		}
		return nil, fmt.Errorf("failed to get historic record by id %d: %w", id, err)
	}
	return record, nil
}

func (s *historyService) GetAllRecords(ctx context.Context) ([]models.HistoricRecord, error) {
	records, err := s.historyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get historic records: %w", err)
	}
	return records, nil
}

func (s *historyService) UpdateRecord(ctx context.Context, id int, input HistoricRecordInput) (*models.HistoricRecord, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	record := &models.HistoricRecord{
		ID:       id,
		Year:     input.Year,
		Title:    strings.TrimSpace(input.Title),
		Placings: input.Placings,
	}
	if record.Placings == nil {
		record.Placings = []models.RankingEntry{}
	}
	if err := s.historyRepo.Update(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrHistoricRecordNotFound) {
			return nil, ErrHistoricRecordNotFound
		}
		return nil, fmt.Errorf("failed to update historic record %d: %w", id, err)
	}
	return record, nil
}

func (s *historyService) DeleteRecord(ctx context.Context, id int) error {
	if err := s.historyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrHistoricRecordNotFound) {
			return ErrHistoricRecordNotFound
		}
		return fmt.Errorf("failed to delete historic record %d: %w", id, err)
	}
	return nil
}
