// Package repository defines the storage contracts consumed by the service
// layer. FindByID returns (nil, nil) when no entity has the given id; Save
// assigns an id when the entity carries none; DeleteByID is a no-op for
// absent ids. FindAll is ordered by id ascending.
package repository

import (
	"context"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
)

type AuthorRepository interface {
	FindAll(ctx context.Context) ([]models.Author, error)
	FindByID(ctx context.Context, id int64) (*models.Author, error)
	Save(ctx context.Context, author models.Author) (models.Author, error)
	DeleteByID(ctx context.Context, id int64) error
}

type GenreRepository interface {
	FindAll(ctx context.Context) ([]models.Genre, error)
	FindByID(ctx context.Context, id int64) (*models.Genre, error)
	Save(ctx context.Context, genre models.Genre) (models.Genre, error)
	DeleteByID(ctx context.Context, id int64) error
}

type BookRepository interface {
	FindAll(ctx context.Context) ([]models.Book, error)
	FindByID(ctx context.Context, id int64) (*models.Book, error)
	Save(ctx context.Context, book models.Book) (models.Book, error)
	DeleteByID(ctx context.Context, id int64) error
}
