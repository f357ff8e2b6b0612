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

type TeamService interface {
	CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context, modalityID *int) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	AddPlayerToSquad(ctx context.Context, teamID, playerID int) (*models.Team, error)
	RemovePlayerFromSquad(ctx context.Context, teamID, playerID int) (*models.Team, error)
	UploadTeamLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Team, error)
}

type TeamInput struct {
	ModalityID      int    `json:"modality_id"`
	Name            string `json:"name"`
	TaxID           string `json:"tax_id"`
	ResponsibleName string `json:"responsible_name"`
	ResponsibleID   string `json:"responsible_id"`
	Phone           string `json:"phone"`
}

type teamService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
	resolver   ReferenceResolver
	uploader   storage.FileUploader
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	resolver ReferenceResolver,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		resolver:   resolver,
		uploader:   uploader,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	modality, err := s.resolver.Modality(ctx, input.ModalityID)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		ModalityID:      modality.ID,
		Name:            name,
		Squad:           []int{},
		TaxID:           strings.TrimSpace(input.TaxID),
		ResponsibleName: strings.TrimSpace(input.ResponsibleName),
		ResponsibleID:   strings.TrimSpace(input.ResponsibleID),
		Phone:           strings.TrimSpace(input.Phone),
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	team.Modality = modality
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by id %d: %w", id, err)
	}
	team.LogoURL = publicURL(team.LogoKey, s.uploader)
	s.populateSquad(ctx, team)
	return team, nil
}

// populateSquad hydrates player records for display. A squad entry whose
// player was deleted is skipped, not an error; dangling ids are tolerated.
func (s *teamService) populateSquad(ctx context.Context, team *models.Team) {
	if len(team.Squad) == 0 {
		return
	}
	players := make([]models.Player, 0, len(team.Squad))
	for _, playerID := range team.Squad {
		player, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			continue
		}
		player.PhotoURL = publicURL(player.PhotoKey, s.uploader)
		players = append(players, *player)
	}
	team.Players = players
}

func (s *teamService) ListTeams(ctx context.Context, modalityID *int) ([]models.Team, error) {
	var (
		teams []models.Team
		err   error
	)
	if modalityID != nil {
		teams, err = s.teamRepo.ListByModality(ctx, *modalityID)
	} else {
		teams, err = s.teamRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	for i := range teams {
		teams[i].LogoURL = publicURL(teams[i].LogoKey, s.uploader)
	}
	return teams, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if _, err := s.resolver.Modality(ctx, input.ModalityID); err != nil {
		return nil, err
	}

	// Fetch-then-overwrite: the squad survives a contact-details edit.
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.ModalityID = input.ModalityID
	team.Name = name
	team.TaxID = strings.TrimSpace(input.TaxID)
	team.ResponsibleName = strings.TrimSpace(input.ResponsibleName)
	team.ResponsibleID = strings.TrimSpace(input.ResponsibleID)
	team.Phone = strings.TrimSpace(input.Phone)

	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		default:
			return nil, fmt.Errorf("failed to update team %d: %w", id, err)
		}
	}
	return team, nil
}

// DeleteTeam removes the team only. Matches and championship table rows keep
// their snapshots of it; no cascade.
func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team %d for deletion: %w", id, err)
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}

	if team.LogoKey != nil && *team.LogoKey != "" {
		_ = s.uploader.Delete(ctx, *team.LogoKey)
	}
	return nil
}

func (s *teamService) AddPlayerToSquad(ctx context.Context, teamID, playerID int) (*models.Team, error) {
	player, err := s.resolver.Player(ctx, playerID)
	if err != nil {
		return nil, err
	}

	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	for _, id := range team.Squad {
		if id == playerID {
			return nil, ErrPlayerAlreadyInSquad
		}
	}
	team.Squad = append(team.Squad, playerID)

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update squad for team %d: %w", teamID, err)
	}

	// Snapshot the team name onto the player's membership list. It stays
	// even if the team is later renamed or deleted.
	hasMembership := false
	for _, name := range player.Memberships {
		if name == team.Name {
			hasMembership = true
			break
		}
	}
	if !hasMembership {
		player.Memberships = append(player.Memberships, team.Name)
		if err := s.playerRepo.Update(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to record membership for player %d: %w", playerID, err)
		}
	}

	s.populateSquad(ctx, team)
	return team, nil
}

func (s *teamService) RemovePlayerFromSquad(ctx context.Context, teamID, playerID int) (*models.Team, error) {
	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	squad := team.Squad[:0]
	for _, id := range team.Squad {
		if id != playerID {
			squad = append(squad, id)
		}
	}
	team.Squad = squad

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update squad for team %d: %w", teamID, err)
	}
	s.populateSquad(ctx, team)
	return team, nil
}

func (s *teamService) UploadTeamLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Team, error) {
	team, err := s.GetTeamByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := team.LogoKey
	key := fmt.Sprintf("teams/%d/logo%s", id, ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save team logo key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	team.LogoKey = &result.Key
	team.LogoURL = publicURL(&result.Key, s.uploader)
	return team, nil
}
