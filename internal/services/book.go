package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/repository"
)

const minTitleLen = 3

// BookService validates inputs and orchestrates the three repositories.
// Referenced authors and genres are resolved before any book is written, so
// a persisted book always carries existing references.
type BookService struct {
	books   repository.BookRepository
	authors repository.AuthorRepository
	genres  repository.GenreRepository
	log     zerolog.Logger
}

func NewBookService(
	books repository.BookRepository,
	authors repository.AuthorRepository,
	genres repository.GenreRepository,
	log zerolog.Logger,
) *BookService {
	return &BookService{
		books:   books,
		authors: authors,
		genres:  genres,
		log:     log,
	}
}

func (s *BookService) FindAll(ctx context.Context) ([]models.Book, error) {
	return s.books.FindAll(ctx)
}

// FindByID returns nil when no book has the given id.
func (s *BookService) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	return s.books.FindByID(ctx, id)
}

func (s *BookService) Create(ctx context.Context, title string, authorID, genreID int64) (models.Book, error) {
	if err := validateTitle(title); err != nil {
		return models.Book{}, err
	}

	author, genre, err := s.resolveRefs(ctx, authorID, genreID)
	if err != nil {
		return models.Book{}, err
	}

	book, err := s.books.Save(ctx, models.Book{
		Title:  title,
		Author: author,
		Genre:  genre,
	})
	if err != nil {
		return models.Book{}, fmt.Errorf("save book: %w", err)
	}

	s.log.Info().Int64("id", book.ID).Str("title", book.Title).Msg("book created")
	return book, nil
}

func (s *BookService) Update(ctx context.Context, id int64, title string, authorID, genreID int64) (models.Book, error) {
	if err := validateTitle(title); err != nil {
		return models.Book{}, err
	}

	existing, err := s.books.FindByID(ctx, id)
	if err != nil {
		return models.Book{}, err
	}
	if existing == nil {
		return models.Book{}, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}

	author, genre, err := s.resolveRefs(ctx, authorID, genreID)
	if err != nil {
		return models.Book{}, err
	}

	existing.Title = title
	existing.Author = author
	existing.Genre = genre

	book, err := s.books.Save(ctx, *existing)
	if err != nil {
		return models.Book{}, fmt.Errorf("save book %d: %w", id, err)
	}

	s.log.Info().Int64("id", book.ID).Str("title", book.Title).Msg("book updated")
	return book, nil
}

// DeleteByID is idempotent: deleting an absent id succeeds.
func (s *BookService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.books.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	s.log.Info().Int64("id", id).Msg("book deleted")
	return nil
}

func (s *BookService) resolveRefs(ctx context.Context, authorID, genreID int64) (models.Author, models.Genre, error) {
	author, err := s.authors.FindByID(ctx, authorID)
	if err != nil {
		return models.Author{}, models.Genre{}, err
	}
	if author == nil {
		return models.Author{}, models.Genre{}, fmt.Errorf("author %d: %w", authorID, ErrNotFound)
	}

	genre, err := s.genres.FindByID(ctx, genreID)
	if err != nil {
		return models.Author{}, models.Genre{}, err
	}
	if genre == nil {
		return models.Author{}, models.Genre{}, fmt.Errorf("genre %d: %w", genreID, ErrNotFound)
	}

	return *author, *genre, nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Fields: []FieldError{
			{Field: "title", Message: "title must not be blank"},
		}}
	}
	if utf8.RuneCountInString(title) < minTitleLen {
		return &ValidationError{Fields: []FieldError{
			{Field: "title", Message: fmt.Sprintf("title must be at least %d characters", minTitleLen)},
		}}
	}
	return nil
}
