package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Dosada05/league-console/brackets"
	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
	"github.com/Dosada05/league-console/storage"
)

// unknownOpponent is what a dangling or absent team reference renders as.
const unknownOpponent = "unknown opponent"

type MatchService interface {
	CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*MatchView, error)
	ListMatches(ctx context.Context, filter MatchFilter) (*MatchBoard, error)
	UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
	UploadResultSheet(ctx context.Context, id int, file io.Reader, contentType string) (*models.Match, error)
}

type MatchInput struct {
	ChampionshipID *int    `json:"championship_id"`
	HomeTeamID     *int    `json:"home_team_id"`
	AwayTeamID     *int    `json:"away_team_id"`
	HomeScore      string  `json:"home_score"`
	AwayScore      string  `json:"away_score"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Venue          string  `json:"venue"`
	PhaseLabel     string  `json:"phase_label"`
	TopScorer      *string `json:"top_scorer"`
	MVP            *string `json:"mvp"`
}

// MatchFilter narrows the board. From and To bound the date string
// inclusively; ShowCompleted selects scored (true) or unscored (false)
// matches only, nil keeps both.
type MatchFilter struct {
	ChampionshipID *int
	From           string
	To             string
	ShowCompleted  *bool
}

// MatchTeamView is the denormalized side of a fixture as the listing shows
// it. A missing team resolves to the placeholder name with no logo.
type MatchTeamView struct {
	TeamID *int    `json:"team_id,omitempty"`
	Name   string  `json:"name"`
	Logo   *string `json:"logo,omitempty"`
}

type MatchView struct {
	models.Match
	HomeTeam         MatchTeamView `json:"home_team"`
	AwayTeam         MatchTeamView `json:"away_team"`
	ChampionshipName string        `json:"championship_name,omitempty"`
}

// MatchBoard splits fixtures into scored results and the upcoming schedule,
// each ordered by date then time ascending.
type MatchBoard struct {
	Scored   []MatchView `json:"scored"`
	Unscored []MatchView `json:"unscored"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	resolver  ReferenceResolver
	uploader  storage.FileUploader
	hub       *brackets.Hub
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	resolver ReferenceResolver,
	uploader storage.FileUploader,
	hub *brackets.Hub,
) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		resolver:  resolver,
		uploader:  uploader,
		hub:       hub,
	}
}

func (s *matchService) validateInput(ctx context.Context, input MatchInput) error {
	if input.Date != "" && !validDate(input.Date) {
		return ErrInvalidDate
	}
	if input.Time != "" && !validTime(input.Time) {
		return ErrInvalidTime
	}

	// All referenced records must exist before anything is written.
	if input.ChampionshipID != nil {
		if _, err := s.resolver.Championship(ctx, *input.ChampionshipID); err != nil {
			return err
		}
	}
	if input.HomeTeamID != nil {
		if _, err := s.resolver.Team(ctx, *input.HomeTeamID); err != nil {
			return err
		}
	}
	if input.AwayTeamID != nil {
		if _, err := s.resolver.Team(ctx, *input.AwayTeamID); err != nil {
			return err
		}
	}
	return nil
}

func matchFromInput(input MatchInput) models.Match {
	return models.Match{
		ChampionshipID: input.ChampionshipID,
		HomeTeamID:     input.HomeTeamID,
		AwayTeamID:     input.AwayTeamID,
		HomeScore:      strings.TrimSpace(input.HomeScore),
		AwayScore:      strings.TrimSpace(input.AwayScore),
		Date:           input.Date,
		Time:           input.Time,
		Venue:          strings.TrimSpace(input.Venue),
		PhaseLabel:     strings.TrimSpace(input.PhaseLabel),
		TopScorer:      input.TopScorer,
		MVP:            input.MVP,
	}
}

func (s *matchService) CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	match := matchFromInput(input)
	if err := s.matchRepo.Create(ctx, &match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	s.broadcast(&match)
	return &match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*MatchView, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", id, err)
	}
	view := s.view(ctx, *match)
	return &view, nil
}

func (s *matchService) ListMatches(ctx context.Context, filter MatchFilter) (*MatchBoard, error) {
	var (
		matches []models.Match
		err     error
	)
	if filter.ChampionshipID != nil {
		matches, err = s.matchRepo.ListByChampionship(ctx, *filter.ChampionshipID)
	} else {
		matches, err = s.matchRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	matches = applyFilter(matches, filter)

	board := &MatchBoard{
		Scored:   make([]MatchView, 0, len(matches)),
		Unscored: make([]MatchView, 0, len(matches)),
	}
	for _, match := range matches {
		view := s.view(ctx, match)
		if match.Scored() {
			board.Scored = append(board.Scored, view)
		} else {
			board.Unscored = append(board.Unscored, view)
		}
	}
	sortViews(board.Scored)
	sortViews(board.Unscored)
	return board, nil
}

// applyFilter is pure; it narrows an already-fetched slice.
func applyFilter(matches []models.Match, filter MatchFilter) []models.Match {
	out := matches[:0]
	for _, match := range matches {
		if filter.From != "" && match.Date < filter.From {
			continue
		}
		if filter.To != "" && match.Date > filter.To {
			continue
		}
		if filter.ShowCompleted != nil && match.Scored() != *filter.ShowCompleted {
			continue
		}
		out = append(out, match)
	}
	return out
}

func sortViews(views []MatchView) {
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Date != views[j].Date {
			return views[i].Date < views[j].Date
		}
		return views[i].Time < views[j].Time
	})
}

// view resolves the live references of one fixture for display. Deleted
// teams and championships degrade to placeholders rather than errors, so a
// board with stale references still renders.
func (s *matchService) view(ctx context.Context, match models.Match) MatchView {
	match.ResultSheetURL = publicURL(match.ResultSheetKey, s.uploader)
	view := MatchView{
		Match:    match,
		HomeTeam: s.teamView(ctx, match.HomeTeamID),
		AwayTeam: s.teamView(ctx, match.AwayTeamID),
	}
	if match.ChampionshipID != nil {
		if championship, err := s.resolver.Championship(ctx, *match.ChampionshipID); err == nil {
			view.ChampionshipName = championship.Name
		}
	}
	return view
}

func (s *matchService) teamView(ctx context.Context, teamID *int) MatchTeamView {
	if teamID == nil {
		return MatchTeamView{Name: unknownOpponent}
	}
	team, err := s.resolver.Team(ctx, *teamID)
	if err != nil {
		return MatchTeamView{TeamID: teamID, Name: unknownOpponent}
	}
	return MatchTeamView{
		TeamID: teamID,
		Name:   team.Name,
		Logo:   publicURL(team.LogoKey, s.uploader),
	}
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	current, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d for update: %w", id, err)
	}

	match := matchFromInput(input)
	match.ID = id
	match.CreatedAt = current.CreatedAt
	match.ResultSheetKey = current.ResultSheetKey

	if err := s.matchRepo.Update(ctx, &match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}
	s.broadcast(&match)
	return &match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to get match %d for deletion: %w", id, err)
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}

	if match.ResultSheetKey != nil && *match.ResultSheetKey != "" {
		_ = s.uploader.Delete(ctx, *match.ResultSheetKey)
	}
	return nil
}

func (s *matchService) UploadResultSheet(ctx context.Context, id int, file io.Reader, contentType string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := match.ResultSheetKey
	key := fmt.Sprintf("matches/%d/result_sheet%s", id, ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload result sheet: %w", err)
	}

	if err := s.matchRepo.UpdateResultSheetKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save result sheet key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	match.ResultSheetKey = &result.Key
	match.ResultSheetURL = publicURL(&result.Key, s.uploader)
	return match, nil
}

func (s *matchService) broadcast(match *models.Match) {
	if s.hub == nil || match.ChampionshipID == nil {
		return
	}
	s.hub.BroadcastToRoom(strconv.Itoa(*match.ChampionshipID), brackets.Event{
		Type:    brackets.EventMatchUpdated,
		Payload: match,
	})
}
