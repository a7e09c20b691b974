// Package mapper converts domain entities into transport shapes. Both HTTP
// surfaces share these conversions.
package mapper

import (
	"github.com/samber/lo"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/dto"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
)

func AuthorToResponse(a models.Author) dto.AuthorResponse {
	return dto.AuthorResponse{
		ID:       a.ID,
		FullName: a.FullName,
	}
}

func GenreToResponse(g models.Genre) dto.GenreResponse {
	return dto.GenreResponse{
		ID:   g.ID,
		Name: g.Name,
	}
}

func BookToResponse(b models.Book) dto.BookResponse {
	return dto.BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: AuthorToResponse(b.Author),
		Genre:  GenreToResponse(b.Genre),
	}
}

func AuthorsToResponses(authors []models.Author) []dto.AuthorResponse {
	return lo.Map(authors, func(a models.Author, _ int) dto.AuthorResponse {
		return AuthorToResponse(a)
	})
}

func GenresToResponses(genres []models.Genre) []dto.GenreResponse {
	return lo.Map(genres, func(g models.Genre, _ int) dto.GenreResponse {
		return GenreToResponse(g)
	})
}

func BooksToResponses(books []models.Book) []dto.BookResponse {
	return lo.Map(books, func(b models.Book, _ int) dto.BookResponse {
		return BookToResponse(b)
	})
}
