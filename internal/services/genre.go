package services

import (
	"context"
	"fmt"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/repository"
)

// GenreService exposes read access to genres.
type GenreService struct {
	genres repository.GenreRepository
}

func NewGenreService(genres repository.GenreRepository) *GenreService {
	return &GenreService{genres: genres}
}

func (s *GenreService) FindAll(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *GenreService) FindByID(ctx context.Context, id int64) (models.Genre, error) {
	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return models.Genre{}, err
	}
	if genre == nil {
		return models.Genre{}, fmt.Errorf("genre %d: %w", id, ErrNotFound)
	}
	return *genre, nil
}
