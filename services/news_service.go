package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Dosada05/league-console/models"
	"github.com/Dosada05/league-console/repositories"
	"github.com/Dosada05/league-console/storage"
)

type NewsService interface {
	CreateNews(ctx context.Context, input NewsInput) (*models.News, error)
	GetNewsByID(ctx context.Context, id int) (*models.News, error)
	GetAllNews(ctx context.Context) ([]models.News, error)
	UpdateNews(ctx context.Context, id int, input NewsInput) (*models.News, error)
	DeleteNews(ctx context.Context, id int) error
	UploadNewsCover(ctx context.Context, id int, file io.Reader, contentType string) (*models.News, error)
}

type NewsInput struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	PublishedAt *time.Time `json:"published_at"`
}

type newsService struct {
	newsRepo repositories.NewsRepository
	uploader storage.FileUploader
}

func NewNewsService(newsRepo repositories.NewsRepository, uploader storage.FileUploader) NewsService {
	return &newsService{
		newsRepo: newsRepo,
		uploader: uploader,
	}
}

func (s *newsService) CreateNews(ctx context.Context, input NewsInput) (*models.News, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrNameRequired
	}

	news := &models.News{
		Title: title,
		Body:  input.Body,
	}
	if input.PublishedAt != nil {
		news.PublishedAt = *input.PublishedAt
	} else {
		news.PublishedAt = time.Now().UTC()
	}

	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("failed to create news item: %w", err)
	}
	return news, nil
}

func (s *newsService) GetNewsByID(ctx context.Context, id int) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNewsNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news item by id %d: %w", id, err)
	}
	news.CoverURL = publicURL(news.CoverKey, s.uploader)
	return news, nil
}

func (s *newsService) GetAllNews(ctx context.Context) ([]models.News, error) {
	items, err := s.newsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all news items: %w", err)
	}
	for i := range items {
		items[i].CoverURL = publicURL(items[i].CoverKey, s.uploader)
	}
	return items, nil
}

func (s *newsService) UpdateNews(ctx context.Context, id int, input NewsInput) (*models.News, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrNameRequired
	}

	news, err := s.GetNewsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	news.Title = title
	news.Body = input.Body
	if input.PublishedAt != nil {
		news.PublishedAt = *input.PublishedAt
	}

	if err := s.newsRepo.Update(ctx, news); err != nil {
		if errors.Is(err, repositories.ErrNewsNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to update news item %d: %w", id, err)
	}
	return news, nil
}

func (s *newsService) DeleteNews(ctx context.Context, id int) error {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNewsNotFound) {
			return ErrNewsNotFound
		}
		return fmt.Errorf("failed to get news item %d for deletion: %w", id, err)
	}

	if err := s.newsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNewsNotFound) {
			return ErrNewsNotFound
		}
		return fmt.Errorf("failed to delete news item %d: %w", id, err)
	}

	if news.CoverKey != nil && *news.CoverKey != "" {
		_ = s.uploader.Delete(ctx, *news.CoverKey)
	}
	return nil
}

func (s *newsService) UploadNewsCover(ctx context.Context, id int, file io.Reader, contentType string) (*models.News, error) {
	news, err := s.GetNewsByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext, err := extensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	oldKey := news.CoverKey
	key := fmt.Sprintf("news/%d/cover%s", id, ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload news cover: %w", err)
	}

	if err := s.newsRepo.UpdateCoverKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save news cover key: %w", err)
	}

	if oldKey != nil && *oldKey != result.Key {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	news.CoverKey = &result.Key
	news.CoverURL = publicURL(&result.Key, s.uploader)
	return news, nil
}
