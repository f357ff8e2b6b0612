package services

import (
	"bytes"
	"context"
	"io"

	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
	"github.com/Dosada05/league-console/storage"
)

// Hand-rolled stubs shared by the service tests. Each stub keeps records in
// a map and counts writes so tests can assert nothing was persisted when a
// parent lookup fails.

type stubUploader struct {
	uploads []string
	deletes []string
}

func (u *stubUploader) Upload(_ context.Context, key, _ string, reader io.Reader) (*storage.UploadResult, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, err
	}
	u.uploads = append(u.uploads, key)
	return &storage.UploadResult{Key: key, Location: "https://cdn.test/" + key}, nil
}

func (u *stubUploader) Delete(_ context.Context, key string) error {
	u.deletes = append(u.deletes, key)
	return nil
}

func (u *stubUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

type stubResolver struct {
	sports        map[int]*models.Sport
	modalities    map[int]*models.Modality
	teams         map[int]*models.Team
	players       map[int]*models.Player
	championships map[int]*models.Championship
}

func newStubResolver() *stubResolver {
	return &stubResolver{
		sports:        map[int]*models.Sport{},
		modalities:    map[int]*models.Modality{},
		teams:         map[int]*models.Team{},
		players:       map[int]*models.Player{},
		championships: map[int]*models.Championship{},
	}
}

func (r *stubResolver) Sport(_ context.Context, id int) (*models.Sport, error) {
	if s, ok := r.sports[id]; ok {
		return s, nil
	}
	return nil, ErrSportNotFound
}

func (r *stubResolver) Modality(_ context.Context, id int) (*models.Modality, error) {
	if m, ok := r.modalities[id]; ok {
		return m, nil
	}
	return nil, ErrModalityNotFound
}

func (r *stubResolver) Team(_ context.Context, id int) (*models.Team, error) {
	if t, ok := r.teams[id]; ok {
		return t, nil
	}
	return nil, ErrTeamNotFound
}

func (r *stubResolver) Player(_ context.Context, id int) (*models.Player, error) {
	if p, ok := r.players[id]; ok {
		return p, nil
	}
	return nil, ErrPlayerNotFound
}

func (r *stubResolver) Championship(_ context.Context, id int) (*models.Championship, error) {
	if c, ok := r.championships[id]; ok {
		return c, nil
	}
	return nil, ErrChampionshipNotFound
}

type stubMatchRepo struct {
	matches map[int]*models.Match
	nextID  int
	creates int
	updates int
}

func newStubMatchRepo() *stubMatchRepo {
	return &stubMatchRepo{matches: map[int]*models.Match{}, nextID: 1}
}

func (r *stubMatchRepo) Create(_ context.Context, match *models.Match) error {
	match.ID = r.nextID
	r.nextID++
	cp := *match
	r.matches[match.ID] = &cp
	r.creates++
	return nil
}

func (r *stubMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	if m, ok := r.matches[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, repositories.ErrMatchNotFound
}

func (r *stubMatchRepo) GetAll(_ context.Context) ([]models.Match, error) {
	out := make([]models.Match, 0, len(r.matches))
	for id := 1; id < r.nextID; id++ {
		if m, ok := r.matches[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMatchRepo) ListByChampionship(ctx context.Context, championshipID int) ([]models.Match, error) {
	all, _ := r.GetAll(ctx)
	out := make([]models.Match, 0)
	for _, m := range all {
		if m.ChampionshipID != nil && *m.ChampionshipID == championshipID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMatchRepo) Update(_ context.Context, match *models.Match) error {
	if _, ok := r.matches[match.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	cp := *match
	r.matches[match.ID] = &cp
	r.updates++
	return nil
}

func (r *stubMatchRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func (r *stubMatchRepo) UpdateResultSheetKey(_ context.Context, id int, key *string) error {
	m, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	m.ResultSheetKey = key
	return nil
}

func (r *stubMatchRepo) Count(_ context.Context) (int, error) {
	return len(r.matches), nil
}

func (r *stubMatchRepo) CountUnscored(_ context.Context) (int, error) {
	n := 0
	for _, m := range r.matches {
		if !m.Scored() {
			n++
		}
	}
	return n, nil
}

type stubChampionshipRepo struct {
	championships map[int]*models.Championship
	nextID        int
	creates       int
	updates       int
}

func newStubChampionshipRepo() *stubChampionshipRepo {
	return &stubChampionshipRepo{championships: map[int]*models.Championship{}, nextID: 1}
}

func (r *stubChampionshipRepo) Create(_ context.Context, c *models.Championship) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.championships[c.ID] = &cp
	r.creates++
	return nil
}

func (r *stubChampionshipRepo) GetByID(_ context.Context, id int) (*models.Championship, error) {
	if c, ok := r.championships[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, repositories.ErrChampionshipNotFound
}

func (r *stubChampionshipRepo) ListByModality(_ context.Context, modalityID int) ([]models.Championship, error) {
	out := make([]models.Championship, 0)
	for id := 1; id < r.nextID; id++ {
		if c, ok := r.championships[id]; ok && c.ModalityID == modalityID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubChampionshipRepo) GetAll(_ context.Context) ([]models.Championship, error) {
	out := make([]models.Championship, 0, len(r.championships))
	for id := 1; id < r.nextID; id++ {
		if c, ok := r.championships[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubChampionshipRepo) Update(_ context.Context, c *models.Championship) error {
	if _, ok := r.championships[c.ID]; !ok {
		return repositories.ErrChampionshipNotFound
	}
	cp := *c
	r.championships[c.ID] = &cp
	r.updates++
	return nil
}

func (r *stubChampionshipRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.championships[id]; !ok {
		return repositories.ErrChampionshipNotFound
	}
	delete(r.championships, id)
	return nil
}

func (r *stubChampionshipRepo) UpdateLogoKey(_ context.Context, id int, key *string) error {
	c, ok := r.championships[id]
	if !ok {
		return repositories.ErrChampionshipNotFound
	}
	c.LogoKey = key
	return nil
}

func (r *stubChampionshipRepo) Count(_ context.Context) (int, error) {
	return len(r.championships), nil
}
