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

type PlayerService interface {
	CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
	UploadPlayerPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Player, error)
}

type PlayerInput struct {
	Name           string   `json:"name"`
	Position       string   `json:"position"`
	BirthDate      string   `json:"birth_date"`
	DocumentNumber string   `json:"document_number"`
	Biography      string   `json:"biography"`
	Trivia         []string `json:"trivia"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
	}
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if input.BirthDate != "" && !validDate(input.BirthDate) {
		return nil, ErrInvalidDate
	}

	player := &models.Player{
		Name:           name,
		Position:       strings.TrimSpace(input.Position),
		BirthDate:      input.BirthDate,
		DocumentNumber: strings.TrimSpace(input.DocumentNumber),
		Biography:      input.Biography,
		Trivia:         input.Trivia,
		Memberships:    []string{},
	}
	if player.Trivia == nil {
		player.Trivia = []string{}
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}
	player.PhotoURL = publicURL(player.PhotoKey, s.uploader)
	return player, nil
}

func (s *playerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", err)
	}
	for i := range players {
		players[i].PhotoURL = publicURL(players[i].PhotoKey, s.uploader)
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if input.BirthDate != "" && !validDate(input.BirthDate) {
		return nil, ErrInvalidDate
	}

	// Fetch-then-overwrite so membership snapshots survive profile edits.
	player, err := s.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Name = name
	player.Position = strings.TrimSpace(input.Position)
	player.BirthDate = input.BirthDate
	player.DocumentNumber = strings.TrimSpace(input.DocumentNumber)
	player.Biography = input.Biography
	if input.Trivia != nil {
		player.Trivia = input.Trivia
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return player, nil
}

// DeletePlayer removes the player document only; squads keep the dangling id
// and membership snapshots elsewhere stay as they were.
func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player %d for deletion: %w", id, err)
	}

	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}

	if player.PhotoKey != nil && *player.PhotoKey != "" {
		_ = s.uploader.Delete(ctx, *player.PhotoKey)
	}
	return nil
}

func (s *playerService) UploadPlayerPhoto(ctx context.Context, id int, file io.Reader, contentType string) (*models.Player, error) {
	player, err := s.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := player.PhotoKey
	key := fmt.Sprintf("players/%d/photo%s", id, ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload player photo: %w", err)
	}

	if err := s.playerRepo.UpdatePhotoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save player photo key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	player.PhotoKey = &result.Key
	player.PhotoURL = publicURL(&result.Key, s.uploader)
	return player, nil
}
