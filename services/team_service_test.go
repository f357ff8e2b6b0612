package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
)

type stubTeamRepo struct {
	teams   map[int]*models.Team
	nextID  int
	creates int
}

func newStubTeamRepo() *stubTeamRepo {
	return &stubTeamRepo{teams: map[int]*models.Team{}, nextID: 1}
}

func (r *stubTeamRepo) Create(_ context.Context, team *models.Team) error {
	team.ID = r.nextID
	r.nextID++
	cp := *team
	r.teams[team.ID] = &cp
	r.creates++
	return nil
}

func (r *stubTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	if t, ok := r.teams[id]; ok {
		cp := *t
		cp.Squad = append([]int(nil), t.Squad...)
		return &cp, nil
	}
	return nil, repositories.ErrTeamNotFound
}

func (r *stubTeamRepo) ListByModality(_ context.Context, modalityID int) ([]models.Team, error) {
	out := make([]models.Team, 0)
	for id := 1; id < r.nextID; id++ {
		if t, ok := r.teams[id]; ok && t.ModalityID == modalityID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTeamRepo) GetAll(_ context.Context) ([]models.Team, error) {
	out := make([]models.Team, 0, len(r.teams))
	for id := 1; id < r.nextID; id++ {
		if t, ok := r.teams[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTeamRepo) Update(_ context.Context, team *models.Team) error {
	if _, ok := r.teams[team.ID]; !ok {
		return repositories.ErrTeamNotFound
	}
	cp := *team
	cp.Squad = append([]int(nil), team.Squad...)
	r.teams[team.ID] = &cp
	return nil
}

func (r *stubTeamRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.teams[id]; !ok {
		return repositories.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *stubTeamRepo) UpdateLogoKey(_ context.Context, id int, key *string) error {
	t, ok := r.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	t.LogoKey = key
	return nil
}

func (r *stubTeamRepo) Count(_ context.Context) (int, error) { return len(r.teams), nil }

type stubPlayerRepo struct {
	players map[int]*models.Player
}

func (r *stubPlayerRepo) Create(_ context.Context, player *models.Player) error {
	r.players[player.ID] = player
	return nil
}

func (r *stubPlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	if p, ok := r.players[id]; ok {
		cp := *p
		cp.Memberships = append([]string(nil), p.Memberships...)
		return &cp, nil
	}
	return nil, repositories.ErrPlayerNotFound
}

func (r *stubPlayerRepo) GetAll(_ context.Context) ([]models.Player, error) {
	out := make([]models.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPlayerRepo) Update(_ context.Context, player *models.Player) error {
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrPlayerNotFound
	}
	cp := *player
	r.players[player.ID] = &cp
	return nil
}

func (r *stubPlayerRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.players[id]; !ok {
		return repositories.ErrPlayerNotFound
	}
	delete(r.players, id)
	return nil
}

func (r *stubPlayerRepo) UpdatePhotoKey(_ context.Context, id int, key *string) error {
	p, ok := r.players[id]
	if !ok {
		return repositories.ErrPlayerNotFound
	}
	p.PhotoKey = key
	return nil
}

func (r *stubPlayerRepo) Count(_ context.Context) (int, error) { return len(r.players), nil }

func newTeamFixture() (TeamService, *stubTeamRepo, *stubPlayerRepo, *stubResolver) {
	teamRepo := newStubTeamRepo()
	playerRepo := &stubPlayerRepo{players: map[int]*models.Player{}}
	resolver := newStubResolver()
	resolver.modalities[1] = &models.Modality{ID: 1, Name: "Futsal Masculino"}
	svc := NewTeamService(teamRepo, playerRepo, resolver, &stubUploader{})
	return svc, teamRepo, playerRepo, resolver
}

func TestCreateTeamRequiresModality(t *testing.T) {
	svc, teamRepo, _, _ := newTeamFixture()

	_, err := svc.CreateTeam(context.Background(), TeamInput{ModalityID: 99, Name: "Lions"})
	if !errors.Is(err, ErrModalityNotFound) {
		t.Fatalf("expected ErrModalityNotFound, got %v", err)
	}
	if teamRepo.creates != 0 {
		t.Fatal("missing parent must abort before any write")
	}
}

func TestAddPlayerToSquad(t *testing.T) {
	svc, _, playerRepo, resolver := newTeamFixture()
	ctx := context.Background()

	team, err := svc.CreateTeam(ctx, TeamInput{ModalityID: 1, Name: "Lions"})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	player := &models.Player{ID: 5, Name: "A. Silva", Memberships: []string{}}
	playerRepo.players[5] = player
	resolver.players[5] = player

	team, err = svc.AddPlayerToSquad(ctx, team.ID, 5)
	if err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}
	if len(team.Squad) != 1 || team.Squad[0] != 5 {
		t.Fatalf("unexpected squad %v", team.Squad)
	}
	if len(team.Players) != 1 || team.Players[0].Name != "A. Silva" {
		t.Fatalf("squad not hydrated, got %+v", team.Players)
	}

	// Membership snapshot recorded on the player.
	stored, _ := playerRepo.GetByID(ctx, 5)
	if len(stored.Memberships) != 1 || stored.Memberships[0] != "Lions" {
		t.Fatalf("expected membership snapshot, got %v", stored.Memberships)
	}

	if _, err := svc.AddPlayerToSquad(ctx, team.ID, 5); !errors.Is(err, ErrPlayerAlreadyInSquad) {
		t.Fatalf("expected ErrPlayerAlreadyInSquad, got %v", err)
	}
}

func TestMembershipSnapshotSurvivesTeamRename(t *testing.T) {
	svc, _, playerRepo, resolver := newTeamFixture()
	ctx := context.Background()

	team, _ := svc.CreateTeam(ctx, TeamInput{ModalityID: 1, Name: "Lions"})
	player := &models.Player{ID: 5, Name: "A. Silva", Memberships: []string{}}
	playerRepo.players[5] = player
	resolver.players[5] = player
	if _, err := svc.AddPlayerToSquad(ctx, team.ID, 5); err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}

	if _, err := svc.UpdateTeam(ctx, team.ID, TeamInput{ModalityID: 1, Name: "Mountain Lions"}); err != nil {
		t.Fatalf("UpdateTeam: %v", err)
	}

	stored, _ := playerRepo.GetByID(ctx, 5)
	if stored.Memberships[0] != "Lions" {
		t.Fatalf("membership snapshot should keep the old name, got %v", stored.Memberships)
	}
}

func TestGetTeamSkipsDanglingSquadIDs(t *testing.T) {
	svc, teamRepo, playerRepo, resolver := newTeamFixture()
	ctx := context.Background()

	team, _ := svc.CreateTeam(ctx, TeamInput{ModalityID: 1, Name: "Lions"})
	for _, id := range []int{5, 6} {
		p := &models.Player{ID: id, Name: "Player", Memberships: []string{}}
		playerRepo.players[id] = p
		resolver.players[id] = p
		if _, err := svc.AddPlayerToSquad(ctx, team.ID, id); err != nil {
			t.Fatalf("AddPlayerToSquad(%d): %v", id, err)
		}
	}

	// Player 6 deleted elsewhere; squad keeps the dangling id.
	delete(playerRepo.players, 6)

	got, err := svc.GetTeamByID(ctx, team.ID)
	if err != nil {
		t.Fatalf("GetTeamByID: %v", err)
	}
	if len(got.Squad) != 2 {
		t.Fatalf("squad ids should be untouched, got %v", got.Squad)
	}
	if len(got.Players) != 1 {
		t.Fatalf("expected 1 hydrated player, got %d", len(got.Players))
	}

	// The raw record still holds both ids.
	raw, _ := teamRepo.GetByID(ctx, team.ID)
	if len(raw.Squad) != 2 {
		t.Fatalf("stored squad mutated, got %v", raw.Squad)
	}
}

func TestRemovePlayerFromSquad(t *testing.T) {
	svc, _, playerRepo, resolver := newTeamFixture()
	ctx := context.Background()

	team, _ := svc.CreateTeam(ctx, TeamInput{ModalityID: 1, Name: "Lions"})
	player := &models.Player{ID: 5, Name: "A. Silva", Memberships: []string{}}
	playerRepo.players[5] = player
	resolver.players[5] = player
	if _, err := svc.AddPlayerToSquad(ctx, team.ID, 5); err != nil {
		t.Fatalf("AddPlayerToSquad: %v", err)
	}

	team, err := svc.RemovePlayerFromSquad(ctx, team.ID, 5)
	if err != nil {
		t.Fatalf("RemovePlayerFromSquad: %v", err)
	}
	if len(team.Squad) != 0 {
		t.Fatalf("expected empty squad, got %v", team.Squad)
	}

	// Leaving the squad does not erase the membership history.
	stored, _ := playerRepo.GetByID(ctx, 5)
	if len(stored.Memberships) != 1 {
		t.Fatalf("membership history should survive removal, got %v", stored.Memberships)
	}
}
