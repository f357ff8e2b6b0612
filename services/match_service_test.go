package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/league-console/models"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func seedMatch(t *testing.T, svc MatchService, input MatchInput) *models.Match {
	t.Helper()
	match, err := svc.CreateMatch(context.Background(), input)
	if err != nil {
		t.Fatalf("CreateMatch(%+v): %v", input, err)
	}
	return match
}

func newMatchFixture() (MatchService, *stubMatchRepo, *stubResolver) {
	repo := newStubMatchRepo()
	resolver := newStubResolver()
	resolver.teams[1] = &models.Team{ID: 1, Name: "Lions"}
	resolver.teams[2] = &models.Team{ID: 2, Name: "Tigers"}
	resolver.championships[10] = &models.Championship{ID: 10, Name: "City Cup"}
	svc := NewMatchService(repo, resolver, &stubUploader{}, nil)
	return svc, repo, resolver
}

func TestCreateMatchRejectsMissingReferences(t *testing.T) {
	svc, repo, _ := newMatchFixture()

	tests := []struct {
		name  string
		input MatchInput
		want  error
	}{
		{"unknown championship", MatchInput{ChampionshipID: intPtr(99)}, ErrChampionshipNotFound},
		{"unknown home team", MatchInput{HomeTeamID: intPtr(99)}, ErrTeamNotFound},
		{"unknown away team", MatchInput{HomeTeamID: intPtr(1), AwayTeamID: intPtr(99)}, ErrTeamNotFound},
		{"bad date", MatchInput{Date: "21-06-2026"}, ErrInvalidDate},
		{"bad time", MatchInput{Date: "2026-06-21", Time: "7pm"}, ErrInvalidTime},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateMatch(context.Background(), tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if repo.creates != 0 {
		t.Fatalf("no match should be written when validation fails, got %d creates", repo.creates)
	}
}

func TestListMatchesPartitionsAndSorts(t *testing.T) {
	svc, _, _ := newMatchFixture()

	// Deliberately seeded out of order.
	seedMatch(t, svc, MatchInput{Date: "2026-06-22", Time: "18:00", HomeScore: "2", AwayScore: "1"})
	seedMatch(t, svc, MatchInput{Date: "2026-06-21", Time: "20:00"})
	seedMatch(t, svc, MatchInput{Date: "2026-06-21", Time: "15:00", HomeScore: "0", AwayScore: "0"})
	seedMatch(t, svc, MatchInput{Date: "2026-06-21", Time: "10:00"})
	// Half-scored counts as unscored.
	seedMatch(t, svc, MatchInput{Date: "2026-06-23", Time: "12:00", HomeScore: "3"})

	board, err := svc.ListMatches(context.Background(), MatchFilter{})
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}

	if len(board.Scored) != 2 {
		t.Fatalf("expected 2 scored matches, got %d", len(board.Scored))
	}
	if len(board.Unscored) != 3 {
		t.Fatalf("expected 3 unscored matches, got %d", len(board.Unscored))
	}

	// Ascending by (date, time) inside each partition.
	if board.Scored[0].Date != "2026-06-21" || board.Scored[1].Date != "2026-06-22" {
		t.Fatalf("scored partition out of order: %s, %s", board.Scored[0].Date, board.Scored[1].Date)
	}
	if board.Unscored[0].Time != "10:00" || board.Unscored[1].Time != "20:00" {
		t.Fatalf("unscored partition out of order: %s, %s", board.Unscored[0].Time, board.Unscored[1].Time)
	}
	if board.Unscored[2].Date != "2026-06-23" {
		t.Fatalf("half-scored match should be unscored, got partition ending %s", board.Unscored[2].Date)
	}
}

func TestListMatchesFilters(t *testing.T) {
	svc, _, _ := newMatchFixture()

	seedMatch(t, svc, MatchInput{ChampionshipID: intPtr(10), Date: "2026-06-20", Time: "10:00", HomeScore: "1", AwayScore: "0"})
	seedMatch(t, svc, MatchInput{ChampionshipID: intPtr(10), Date: "2026-06-25", Time: "10:00"})
	seedMatch(t, svc, MatchInput{Date: "2026-06-22", Time: "10:00"})

	t.Run("by championship", func(t *testing.T) {
		board, err := svc.ListMatches(context.Background(), MatchFilter{ChampionshipID: intPtr(10)})
		if err != nil {
			t.Fatalf("ListMatches: %v", err)
		}
		if len(board.Scored)+len(board.Unscored) != 2 {
			t.Fatalf("expected 2 matches for championship 10, got %d", len(board.Scored)+len(board.Unscored))
		}
	})

	t.Run("date range", func(t *testing.T) {
		board, err := svc.ListMatches(context.Background(), MatchFilter{From: "2026-06-21", To: "2026-06-24"})
		if err != nil {
			t.Fatalf("ListMatches: %v", err)
		}
		if total := len(board.Scored) + len(board.Unscored); total != 1 {
			t.Fatalf("expected 1 match in range, got %d", total)
		}
		if board.Unscored[0].Date != "2026-06-22" {
			t.Fatalf("wrong match in range: %s", board.Unscored[0].Date)
		}
	})

	t.Run("show completed only", func(t *testing.T) {
		board, err := svc.ListMatches(context.Background(), MatchFilter{ShowCompleted: boolPtr(true)})
		if err != nil {
			t.Fatalf("ListMatches: %v", err)
		}
		if len(board.Unscored) != 0 {
			t.Fatalf("expected no unscored matches, got %d", len(board.Unscored))
		}
		if len(board.Scored) != 1 || board.Scored[0].Date != "2026-06-20" {
			t.Fatalf("expected exactly the scored match from 2026-06-20, got %+v", board.Scored)
		}
	})

	t.Run("show pending only", func(t *testing.T) {
		board, err := svc.ListMatches(context.Background(), MatchFilter{ShowCompleted: boolPtr(false)})
		if err != nil {
			t.Fatalf("ListMatches: %v", err)
		}
		if len(board.Scored) != 0 || len(board.Unscored) != 2 {
			t.Fatalf("expected 0 scored / 2 unscored, got %d / %d", len(board.Scored), len(board.Unscored))
		}
	})
}

func TestListMatchesResolvesTeamsWithPlaceholders(t *testing.T) {
	svc, _, resolver := newMatchFixture()

	seedMatch(t, svc, MatchInput{
		ChampionshipID: intPtr(10),
		HomeTeamID:     intPtr(1),
		AwayTeamID:     intPtr(2),
		Date:           "2026-06-21", Time: "10:00",
	})

	// Away team deleted after the match was scheduled.
	delete(resolver.teams, 2)

	board, err := svc.ListMatches(context.Background(), MatchFilter{})
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	view := board.Unscored[0]
	if view.HomeTeam.Name != "Lions" {
		t.Fatalf("expected resolved home team, got %q", view.HomeTeam.Name)
	}
	if view.AwayTeam.Name != unknownOpponent {
		t.Fatalf("expected placeholder for dangling away ref, got %q", view.AwayTeam.Name)
	}
	if view.ChampionshipName != "City Cup" {
		t.Fatalf("expected championship name resolved, got %q", view.ChampionshipName)
	}
}

func TestUpdateMatchPreservesResultSheet(t *testing.T) {
	svc, repo, _ := newMatchFixture()

	match := seedMatch(t, svc, MatchInput{Date: "2026-06-21", Time: "10:00"})
	key := "matches/1/result_sheet.pdf"
	if err := repo.UpdateResultSheetKey(context.Background(), match.ID, &key); err != nil {
		t.Fatalf("UpdateResultSheetKey: %v", err)
	}

	updated, err := svc.UpdateMatch(context.Background(), match.ID, MatchInput{
		Date: "2026-06-21", Time: "10:00", HomeScore: "2", AwayScore: "1",
	})
	if err != nil {
		t.Fatalf("UpdateMatch: %v", err)
	}
	if updated.ResultSheetKey == nil || *updated.ResultSheetKey != key {
		t.Fatal("result sheet key lost on score update")
	}
	if !updated.Scored() {
		t.Fatal("expected match to be scored after update")
	}
}

func TestDeleteMatchRemovesResultSheetObject(t *testing.T) {
	repo := newStubMatchRepo()
	uploader := &stubUploader{}
	svc := NewMatchService(repo, newStubResolver(), uploader, nil)

	match := seedMatch(t, svc, MatchInput{Date: "2026-06-21", Time: "10:00"})
	key := "matches/1/result_sheet.pdf"
	repo.matches[match.ID].ResultSheetKey = &key

	if err := svc.DeleteMatch(context.Background(), match.ID); err != nil {
		t.Fatalf("DeleteMatch: %v", err)
	}
	if len(uploader.deletes) != 1 || uploader.deletes[0] != key {
		t.Fatalf("expected result sheet object deleted, got %v", uploader.deletes)
	}
	if _, err := svc.GetMatchByID(context.Background(), match.ID); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound after delete, got %v", err)
	}
}
