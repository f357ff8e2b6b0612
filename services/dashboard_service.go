package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	sportRepo        repositories.SportRepository
	modalityRepo     repositories.ModalityRepository
	teamRepo         repositories.TeamRepository
	playerRepo       repositories.PlayerRepository
	championshipRepo repositories.ChampionshipRepository
	matchRepo        repositories.MatchRepository
	newsRepo         repositories.NewsRepository
}

func NewDashboardService(
	sportRepo repositories.SportRepository,
	modalityRepo repositories.ModalityRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	championshipRepo repositories.ChampionshipRepository,
	matchRepo repositories.MatchRepository,
	newsRepo repositories.NewsRepository,
) DashboardService {
	return &dashboardService{
		sportRepo:        sportRepo,
		modalityRepo:     modalityRepo,
		teamRepo:         teamRepo,
		playerRepo:       playerRepo,
		championshipRepo: championshipRepo,
		matchRepo:        matchRepo,
		newsRepo:         newsRepo,
	}
}

// GetStats fans the count queries out concurrently; the first failure
// cancels the rest.
func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int, fn func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&stats.SportsTotal, s.sportRepo.Count)
	count(&stats.ModalitiesTotal, s.modalityRepo.Count)
	count(&stats.TeamsTotal, s.teamRepo.Count)
	count(&stats.PlayersTotal, s.playerRepo.Count)
	count(&stats.ChampionshipsTotal, s.championshipRepo.Count)
	count(&stats.MatchesTotal, s.matchRepo.Count)
	count(&stats.UnscoredMatches, s.matchRepo.CountUnscored)
	count(&stats.NewsTotal, s.newsRepo.Count)

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to collect dashboard stats: %w", err)
	}
	return &stats, nil
}
