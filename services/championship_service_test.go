package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/league-console/models"
)

func newChampionshipFixture() (ChampionshipService, *stubChampionshipRepo, *stubResolver, *stubUploader) {
	repo := newStubChampionshipRepo()
	resolver := newStubResolver()
	resolver.modalities[1] = &models.Modality{ID: 1, SportID: 1, Name: "Futsal Masculino"}
	uploader := &stubUploader{}
	svc := NewChampionshipService(repo, resolver, uploader, nil)
	return svc, repo, resolver, uploader
}

func seedChampionship(t *testing.T, svc ChampionshipService) *models.Championship {
	t.Helper()
	c, err := svc.CreateChampionship(context.Background(), ChampionshipInput{
		ModalityID: 1,
		Name:       "City Cup",
		DisplayTag: "CC26",
	})
	if err != nil {
		t.Fatalf("CreateChampionship: %v", err)
	}
	return c
}

func TestCreateChampionshipRequiresModality(t *testing.T) {
	svc, repo, _, _ := newChampionshipFixture()

	_, err := svc.CreateChampionship(context.Background(), ChampionshipInput{
		ModalityID: 99,
		Name:       "Orphan Cup",
	})
	if !errors.Is(err, ErrModalityNotFound) {
		t.Fatalf("expected ErrModalityNotFound, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("missing parent must abort before any write, got %d creates", repo.creates)
	}
}

func TestCreateChampionshipInitializesEmptyStructure(t *testing.T) {
	svc, _, _, _ := newChampionshipFixture()
	c := seedChampionship(t, svc)

	if c.Criteria == nil || len(c.Criteria) != 0 {
		t.Fatalf("expected empty criteria, got %v", c.Criteria)
	}
	if c.Phases == nil || len(c.Phases) != 0 {
		t.Fatalf("expected empty phases, got %v", c.Phases)
	}
	if c.Rankings == nil || len(c.Rankings) != 0 {
		t.Fatalf("expected empty rankings, got %v", c.Rankings)
	}
}

func TestPhaseEditingPersistsWholeDocument(t *testing.T) {
	svc, repo, _, _ := newChampionshipFixture()
	c := seedChampionship(t, svc)
	ctx := context.Background()

	if _, err := svc.AddCriterion(ctx, c.ID, models.Criterion{Key: "points", Label: "Pts", Type: models.CriterionNumber}); err != nil {
		t.Fatalf("AddCriterion: %v", err)
	}
	if _, err := svc.AddPhase(ctx, c.ID, "League", models.PhaseRoundRobin); err != nil {
		t.Fatalf("AddPhase: %v", err)
	}
	edited, err := svc.SetCell(ctx, c.ID, 0, 1, "points", "6")
	if err != nil {
		t.Fatalf("SetCell: %v", err)
	}

	if len(edited.Phases[0].Table) != 2 {
		t.Fatalf("expected 2 materialized rows, got %d", len(edited.Phases[0].Table))
	}
	if repo.updates != 3 {
		t.Fatalf("each edit should persist the document, got %d updates", repo.updates)
	}

	// The stored copy matches what the last edit returned.
	stored, err := svc.GetChampionshipByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetChampionshipByID: %v", err)
	}
	if stored.Phases[0].Table[1]["points"] != "6" {
		t.Fatalf("stored document missing edit, got %v", stored.Phases[0].Table[1])
	}
}

func TestEditRejectsInvalidOperationWithoutPersisting(t *testing.T) {
	svc, repo, _, _ := newChampionshipFixture()
	c := seedChampionship(t, svc)
	ctx := context.Background()

	updatesBefore := repo.updates
	_, err := svc.AddRow(ctx, c.ID, 3)
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected wrapped validation error, got %v", err)
	}
	if repo.updates != updatesBefore {
		t.Fatal("failed edit must not persist")
	}
}

func TestSelectRowTeamSnapshotsNameAndLogo(t *testing.T) {
	svc, _, resolver, _ := newChampionshipFixture()
	c := seedChampionship(t, svc)
	ctx := context.Background()

	logoKey := "teams/7/logo.png"
	resolver.teams[7] = &models.Team{ID: 7, Name: "Lions", LogoKey: &logoKey}

	if _, err := svc.AddPhase(ctx, c.ID, "League", models.PhaseRoundRobin); err != nil {
		t.Fatalf("AddPhase: %v", err)
	}
	edited, err := svc.SelectRowTeam(ctx, c.ID, 0, 0, 7)
	if err != nil {
		t.Fatalf("SelectRowTeam: %v", err)
	}

	row := edited.Phases[0].Table[0]
	if row[models.RowKeyTeamName] != "Lions" {
		t.Fatalf("expected snapshotted name, got %v", row[models.RowKeyTeamName])
	}
	if row[models.RowKeyTeamLogo] != "https://cdn.test/teams/7/logo.png" {
		t.Fatalf("expected snapshotted logo url, got %v", row[models.RowKeyTeamLogo])
	}

	// Renaming the live team later does not touch the snapshot.
	resolver.teams[7].Name = "Mountain Lions"
	stored, _ := svc.GetChampionshipByID(ctx, c.ID)
	if stored.Phases[0].Table[0][models.RowKeyTeamName] != "Lions" {
		t.Fatal("snapshot should not track the live team record")
	}
}

func TestSelectRowTeamUnknownTeamAborts(t *testing.T) {
	svc, repo, _, _ := newChampionshipFixture()
	c := seedChampionship(t, svc)
	ctx := context.Background()

	if _, err := svc.AddPhase(ctx, c.ID, "League", models.PhaseRoundRobin); err != nil {
		t.Fatalf("AddPhase: %v", err)
	}
	updatesBefore := repo.updates

	if _, err := svc.SelectRowTeam(ctx, c.ID, 0, 0, 404); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
	if repo.updates != updatesBefore {
		t.Fatal("unknown team must abort before any write")
	}
}

func TestUpdateChampionshipPreservesPhases(t *testing.T) {
	svc, _, _, _ := newChampionshipFixture()
	c := seedChampionship(t, svc)
	ctx := context.Background()

	if _, err := svc.AddPhase(ctx, c.ID, "League", models.PhaseRoundRobin); err != nil {
		t.Fatalf("AddPhase: %v", err)
	}

	updated, err := svc.UpdateChampionship(ctx, c.ID, ChampionshipInput{
		ModalityID:  1,
		Name:        "City Cup 2026",
		Description: "Annual edition",
	})
	if err != nil {
		t.Fatalf("UpdateChampionship: %v", err)
	}
	if updated.Name != "City Cup 2026" {
		t.Fatalf("name not updated, got %q", updated.Name)
	}
	if len(updated.Phases) != 1 {
		t.Fatal("phases lost on descriptive update")
	}
}

func TestDeleteChampionshipRemovesLogoObject(t *testing.T) {
	svc, repo, _, uploader := newChampionshipFixture()
	c := seedChampionship(t, svc)

	key := "championships/1/logo.png"
	repo.championships[c.ID].LogoKey = &key

	if err := svc.DeleteChampionship(context.Background(), c.ID); err != nil {
		t.Fatalf("DeleteChampionship: %v", err)
	}
	if len(uploader.deletes) != 1 || uploader.deletes[0] != key {
		t.Fatalf("expected logo object deleted, got %v", uploader.deletes)
	}
}

func TestSetRankings(t *testing.T) {
	svc, _, _, _ := newChampionshipFixture()
	c := seedChampionship(t, svc)

	rankings := []models.RankingEntry{
		{Label: "Top scorer", Value: "14 goals", Subject: "A. Silva"},
		{Label: "Champion", Value: "Lions", Subject: ""},
	}
	edited, err := svc.SetRankings(context.Background(), c.ID, rankings)
	if err != nil {
		t.Fatalf("SetRankings: %v", err)
	}
	if len(edited.Rankings) != 2 || edited.Rankings[0].Label != "Top scorer" {
		t.Fatalf("unexpected rankings %v", edited.Rankings)
	}
}
