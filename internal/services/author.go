package services

import (
	"context"
	"fmt"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/repository"
)

// AuthorService exposes read access to authors.
type AuthorService struct {
	authors repository.AuthorRepository
}

func NewAuthorService(authors repository.AuthorRepository) *AuthorService {
	return &AuthorService{authors: authors}
}

func (s *AuthorService) FindAll(ctx context.Context) ([]models.Author, error) {
	return s.authors.FindAll(ctx)
}

func (s *AuthorService) FindByID(ctx context.Context, id int64) (models.Author, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return models.Author{}, err
	}
	if author == nil {
		return models.Author{}, fmt.Errorf("author %d: %w", id, ErrNotFound)
	}
	return *author, nil
}
