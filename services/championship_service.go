package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Dosada05/league-console/brackets"
	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
	"github.com/Dosada05/league-console/storage"
)

type ChampionshipService interface {
	CreateChampionship(ctx context.Context, input ChampionshipInput) (*models.Championship, error)
	GetChampionshipByID(ctx context.Context, id int) (*models.Championship, error)
	ListChampionships(ctx context.Context, modalityID *int) ([]models.Championship, error)
	UpdateChampionship(ctx context.Context, id int, input ChampionshipInput) (*models.Championship, error)
	DeleteChampionship(ctx context.Context, id int) error
	UploadChampionshipLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Championship, error)

	// Phase editing. Each operation is fetch, reduce, overwrite: the stored
	// document is read, one pure reducer from the brackets package is
	// applied, and the whole document is written back (last write wins).
	AddPhase(ctx context.Context, id int, name string, phaseType models.PhaseType) (*models.Championship, error)
	SetPhaseType(ctx context.Context, id, phase int, phaseType models.PhaseType) (*models.Championship, error)
	AddCriterion(ctx context.Context, id int, criterion models.Criterion) (*models.Championship, error)
	RemoveCriterion(ctx context.Context, id int, key string) (*models.Championship, error)
	AddRow(ctx context.Context, id, phase int) (*models.Championship, error)
	RemoveRow(ctx context.Context, id, phase, row int) (*models.Championship, error)
	SetCell(ctx context.Context, id, phase, row int, key string, value any) (*models.Championship, error)
	AddGroup(ctx context.Context, id, phase int, name string) (*models.Championship, error)
	SetGroupCell(ctx context.Context, id, phase, group, row int, key string, value any) (*models.Championship, error)
	AddStage(ctx context.Context, id, phase int, name string) (*models.Championship, error)
	AddMatchup(ctx context.Context, id, phase, stage int) (*models.Championship, error)
	SelectRowTeam(ctx context.Context, id, phase, row, teamID int) (*models.Championship, error)
	SelectGroupRowTeam(ctx context.Context, id, phase, group, row, teamID int) (*models.Championship, error)
	SelectMatchupTeam(ctx context.Context, id, phase, stage, matchup int, side brackets.Side, teamID int) (*models.Championship, error)
	SetRankings(ctx context.Context, id int, rankings []models.RankingEntry) (*models.Championship, error)
}

type ChampionshipInput struct {
	ModalityID  int    `json:"modality_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DisplayTag  string `json:"display_tag"`
}

type championshipService struct {
	championshipRepo repositories.ChampionshipRepository
	resolver         ReferenceResolver
	uploader         storage.FileUploader
	hub              *brackets.Hub
}

func NewChampionshipService(
	championshipRepo repositories.ChampionshipRepository,
	resolver ReferenceResolver,
	uploader storage.FileUploader,
	hub *brackets.Hub,
) ChampionshipService {
	return &championshipService{
		championshipRepo: championshipRepo,
		resolver:         resolver,
		uploader:         uploader,
		hub:              hub,
	}
}

func (s *championshipService) CreateChampionship(ctx context.Context, input ChampionshipInput) (*models.Championship, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	modality, err := s.resolver.Modality(ctx, input.ModalityID)
	if err != nil {
		return nil, err
	}

	championship := &models.Championship{
		ModalityID:  modality.ID,
		Name:        name,
		Description: input.Description,
		DisplayTag:  strings.TrimSpace(input.DisplayTag),
		Criteria:    []models.Criterion{},
		Phases:      []models.Phase{},
		Rankings:    []models.RankingEntry{},
	}
	if err := s.championshipRepo.Create(ctx, championship); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNameConflict) {
			return nil, ErrChampionshipNameConflict
		}
		return nil, fmt.Errorf("failed to create championship: %w", err)
	}
	championship.Modality = modality
	return championship, nil
}

func (s *championshipService) GetChampionshipByID(ctx context.Context, id int) (*models.Championship, error) {
	championship, err := s.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to get championship by id %d: %w", id, err)
	}
	championship.LogoURL = publicURL(championship.LogoKey, s.uploader)
	return championship, nil
}

func (s *championshipService) ListChampionships(ctx context.Context, modalityID *int) ([]models.Championship, error) {
	var (
		championships []models.Championship
		err           error
	)
	if modalityID != nil {
		championships, err = s.championshipRepo.ListByModality(ctx, *modalityID)
	} else {
		championships, err = s.championshipRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list championships: %w", err)
	}
	for i := range championships {
		championships[i].LogoURL = publicURL(championships[i].LogoKey, s.uploader)
	}
	return championships, nil
}

func (s *championshipService) UpdateChampionship(ctx context.Context, id int, input ChampionshipInput) (*models.Championship, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.resolver.Modality(ctx, input.ModalityID); err != nil {
		return nil, err
	}

	// Fetch-then-overwrite keeps criteria, phases, and rankings intact when
	// only the descriptive fields change.
	championship, err := s.GetChampionshipByID(ctx, id)
	if err != nil {
		return nil, err
	}
	championship.ModalityID = input.ModalityID
	championship.Name = name
	championship.Description = input.Description
	championship.DisplayTag = strings.TrimSpace(input.DisplayTag)

	if err := s.save(ctx, championship); err != nil {
		return nil, err
	}
	return championship, nil
}

func (s *championshipService) DeleteChampionship(ctx context.Context, id int) error {
	championship, err := s.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return ErrChampionshipNotFound
		}
		return fmt.Errorf("failed to get championship %d for deletion: %w", id, err)
	}

	if err := s.championshipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return ErrChampionshipNotFound
		}
		return fmt.Errorf("failed to delete championship %d: %w", id, err)
	}

	if championship.LogoKey != nil && *championship.LogoKey != "" {
		_ = s.uploader.Delete(ctx, *championship.LogoKey)
	}
	return nil
}

func (s *championshipService) UploadChampionshipLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Championship, error) {
	championship, err := s.GetChampionshipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := championship.LogoKey
	key := fmt.Sprintf("championships/%d/logo%s", id, ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload championship logo: %w", err)
	}

	if err := s.championshipRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save championship logo key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	championship.LogoKey = &result.Key
	championship.LogoURL = publicURL(&result.Key, s.uploader)
	return championship, nil
}

// edit runs one reducer against the stored document and persists the result.
func (s *championshipService) edit(
	ctx context.Context,
	id int,
	reduce func(models.Championship) (models.Championship, error),
) (*models.Championship, error) {
	championship, err := s.GetChampionshipByID(ctx, id)
	if err != nil {
		return nil, err
	}

	edited, err := reduce(*championship)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if err := s.save(ctx, &edited); err != nil {
		return nil, err
	}
	return &edited, nil
}

func (s *championshipService) save(ctx context.Context, championship *models.Championship) error {
	if err := s.championshipRepo.Update(ctx, championship); err != nil {
		switch {
		case errors.Is(err, repositories.ErrChampionshipNotFound):
			return ErrChampionshipNotFound
		case errors.Is(err, repositories.ErrChampionshipNameConflict):
			return ErrChampionshipNameConflict
		default:
			return fmt.Errorf("failed to save championship %d: %w", championship.ID, err)
		}
	}
	if s.hub != nil {
		s.hub.BroadcastToRoom(strconv.Itoa(championship.ID), brackets.Event{
			Type:    brackets.EventChampionshipUpdated,
			Payload: championship,
		})
	}
	return nil
}

func (s *championshipService) AddPhase(ctx context.Context, id int, name string, phaseType models.PhaseType) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.AddPhase(c, name, phaseType)
	})
}

func (s *championshipService) SetPhaseType(ctx context.Context, id, phase int, phaseType models.PhaseType) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.SetPhaseType(c, phase, phaseType)
	})
}

func (s *championshipService) AddCriterion(ctx context.Context, id int, criterion models.Criterion) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.AddCriterion(c, criterion)
	})
}

func (s *championshipService) RemoveCriterion(ctx context.Context, id int, key string) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.RemoveCriterion(c, key), nil
	})
}

func (s *championshipService) AddRow(ctx context.Context, id, phase int) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.AddRow(c, phase)
	})
}

func (s *championshipService) RemoveRow(ctx context.Context, id, phase, row int) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.RemoveRow(c, phase, row)
	})
}

func (s *championshipService) SetCell(ctx context.Context, id, phase, row int, key string, value any) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.SetCell(c, phase, row, key, value)
	})
}

func (s *championshipService) AddGroup(ctx context.Context, id, phase int, name string) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.AddGroup(c, phase, name)
	})
}

func (s *championshipService) SetGroupCell(ctx context.Context, id, phase, group, row int, key string, value any) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.SetGroupCell(c, phase, group, row, key, value)
	})
}

func (s *championshipService) AddStage(ctx context.Context, id, phase int, name string) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.AddStage(c, phase, name)
	})
}

func (s *championshipService) AddMatchup(ctx context.Context, id, phase, stage int) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.AddMatchup(c, phase, stage)
	})
}

// teamSlot resolves a live team reference into the snapshot written onto
// rows and matchups.
func (s *championshipService) teamSlot(ctx context.Context, teamID int) (models.TeamSlot, error) {
	team, err := s.resolver.Team(ctx, teamID)
	if err != nil {
		return models.TeamSlot{}, err
	}
	slot := models.TeamSlot{TeamID: team.ID, Name: team.Name}
	if url := publicURL(team.LogoKey, s.uploader); url != nil {
		slot.Logo = *url
	}
	return slot, nil
}

func (s *championshipService) SelectRowTeam(ctx context.Context, id, phase, row, teamID int) (*models.Championship, error) {
	slot, err := s.teamSlot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.SelectRowTeam(c, phase, row, slot)
	})
}

func (s *championshipService) SelectGroupRowTeam(ctx context.Context, id, phase, group, row, teamID int) (*models.Championship, error) {
	slot, err := s.teamSlot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.SelectGroupRowTeam(c, phase, group, row, slot)
	})
}

func (s *championshipService) SelectMatchupTeam(ctx context.Context, id, phase, stage, matchup int, side brackets.Side, teamID int) (*models.Championship, error) {
	slot, err := s.teamSlot(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		return brackets.SelectMatchupTeam(c, phase, stage, matchup, side, slot)
	})
}

func (s *championshipService) SetRankings(ctx context.Context, id int, rankings []models.RankingEntry) (*models.Championship, error) {
	return s.edit(ctx, id, func(c models.Championship) (models.Championship, error) {
		out := brackets.Clone(c)
		if rankings == nil {
			rankings = []models.RankingEntry{}
		}
		out.Rankings = rankings
		return out, nil
	})
}
