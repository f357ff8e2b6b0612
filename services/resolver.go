package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
)

// ReferenceResolver turns an admin-entered identifier into a verified record.
// Every dependent write (team under a modality, championship under a
// modality, match under a championship) resolves its parent through this
// type first, so a missing parent aborts before any write side effect.
type ReferenceResolver interface {
	Sport(ctx context.Context, id int) (*models.Sport, error)
	Modality(ctx context.Context, id int) (*models.Modality, error)
	Team(ctx context.Context, id int) (*models.Team, error)
	Player(ctx context.Context, id int) (*models.Player, error)
	Championship(ctx context.Context, id int) (*models.Championship, error)
}

type referenceResolver struct {
	sportRepo        repositories.SportRepository
	modalityRepo     repositories.ModalityRepository
	teamRepo         repositories.TeamRepository
	playerRepo       repositories.PlayerRepository
	championshipRepo repositories.ChampionshipRepository
}

func NewReferenceResolver(
	sportRepo repositories.SportRepository,
	modalityRepo repositories.ModalityRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	championshipRepo repositories.ChampionshipRepository,
) ReferenceResolver {
	return &referenceResolver{
		sportRepo:        sportRepo,
		modalityRepo:     modalityRepo,
		teamRepo:         teamRepo,
		playerRepo:       playerRepo,
		championshipRepo: championshipRepo,
	}
}

func (r *referenceResolver) Sport(ctx context.Context, id int) (*models.Sport, error) {
	sport, err := r.sportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, fmt.Errorf("failed to resolve sport %d: %w", id, err)
	}
	return sport, nil
}

func (r *referenceResolver) Modality(ctx context.Context, id int) (*models.Modality, error) {
	modality, err := r.modalityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrModalityNotFound) {
			return nil, ErrModalityNotFound
		}
		return nil, fmt.Errorf("failed to resolve modality %d: %w", id, err)
	}
	return modality, nil
}

func (r *referenceResolver) Team(ctx context.Context, id int) (*models.Team, error) {
	team, err := r.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to resolve team %d: %w", id, err)
	}
	return team, nil
}

func (r *referenceResolver) Player(ctx context.Context, id int) (*models.Player, error) {
	player, err := r.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to resolve player %d: %w", id, err)
	}
	return player, nil
}

func (r *referenceResolver) Championship(ctx context.Context, id int) (*models.Championship, error) {
	championship, err := r.championshipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to resolve championship %d: %w", id, err)
	}
	return championship, nil
}
