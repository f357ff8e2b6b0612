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

type SponsorService interface {
	CreateSponsor(ctx context.Context, input SponsorInput) (*models.Sponsor, error)
	GetSponsorByID(ctx context.Context, id int) (*models.Sponsor, error)
	GetAllSponsors(ctx context.Context) ([]models.Sponsor, error)
	UpdateSponsor(ctx context.Context, id int, input SponsorInput) (*models.Sponsor, error)
	DeleteSponsor(ctx context.Context, id int) error
	UploadSponsorLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Sponsor, error)
}

type SponsorInput struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

type sponsorService struct {
	sponsorRepo repositories.SponsorRepository
	uploader    storage.FileUploader
}

func NewSponsorService(sponsorRepo repositories.SponsorRepository, uploader storage.FileUploader) SponsorService {
	return &sponsorService{
		sponsorRepo: sponsorRepo,
		uploader:    uploader,
	}
}

func (s *sponsorService) CreateSponsor(ctx context.Context, input SponsorInput) (*models.Sponsor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	sponsor := &models.Sponsor{
		Name:    name,
		Website: strings.TrimSpace(input.Website),
	}
	if err := s.sponsorRepo.Create(ctx, sponsor); err != nil {
		if errors.Is(err, repositories.ErrSponsorNameConflict) {
			return nil, ErrSponsorNameConflict
		}
		return nil, fmt.Errorf("failed to create sponsor: %w", err)
	}
	return sponsor, nil
}

func (s *sponsorService) GetSponsorByID(ctx context.Context, id int) (*models.Sponsor, error) {
	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to get sponsor by id %d: %w", id, err)
	}
	sponsor.LogoURL = publicURL(sponsor.LogoKey, s.uploader)
	return sponsor, nil
}

func (s *sponsorService) GetAllSponsors(ctx context.Context) ([]models.Sponsor, error) {
	sponsors, err := s.sponsorRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sponsors: %w", err)
	}
	for i := range sponsors {
		sponsors[i].LogoURL = publicURL(sponsors[i].LogoKey, s.uploader)
	}
	return sponsors, nil
}

func (s *sponsorService) UpdateSponsor(ctx context.Context, id int, input SponsorInput) (*models.Sponsor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	sponsor, err := s.GetSponsorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sponsor.Name = name
	sponsor.Website = strings.TrimSpace(input.Website)

	if err := s.sponsorRepo.Update(ctx, sponsor); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSponsorNotFound):
			return nil, ErrSponsorNotFound
		case errors.Is(err, repositories.ErrSponsorNameConflict):
			return nil, ErrSponsorNameConflict
		default:
			return nil, fmt.Errorf("failed to update sponsor %d: %w", id, err)
		}
	}
	return sponsor, nil
}

func (s *sponsorService) DeleteSponsor(ctx context.Context, id int) error {
	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return ErrSponsorNotFound
		}
		return fmt.Errorf("failed to get sponsor %d for deletion: %w", id, err)
	}

	if err := s.sponsorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSponsorNotFound) {
			return ErrSponsorNotFound
		}
		return fmt.Errorf("failed to delete sponsor %d: %w", id, err)
	}

	if sponsor.LogoKey != nil && *sponsor.LogoKey != "" {
		_ = s.uploader.Delete(ctx, *sponsor.LogoKey)
	}
	return nil
}

func (s *sponsorService) UploadSponsorLogo(ctx context.Context, id int, file io.Reader, contentType string) (*models.Sponsor, error) {
	sponsor, err := s.GetSponsorByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := sponsor.LogoKey
	key := fmt.Sprintf("sponsors/%d/logo%s", id, ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload sponsor logo: %w", err)
	}

	if err := s.sponsorRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save sponsor logo key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	sponsor.LogoKey = &result.Key
	sponsor.LogoURL = publicURL(&result.Key, s.uploader)
	return sponsor, nil
}
