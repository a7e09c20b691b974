package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/repository/memory"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/services"
)

type fixture struct {
	books   *memory.BookRepository
	authors *memory.AuthorRepository
	genres  *memory.GenreRepository
	svc     *services.BookService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	f := &fixture{
		books:   memory.NewBookRepository(),
		authors: memory.NewAuthorRepository(),
		genres:  memory.NewGenreRepository(),
	}
	f.svc = services.NewBookService(f.books, f.authors, f.genres, zerolog.Nop())

	for _, a := range []models.Author{{FullName: "Author1"}, {FullName: "Author2"}} {
		_, err := f.authors.Save(ctx, a)
		require.NoError(t, err)
	}
	for _, g := range []models.Genre{{Name: "Genre1"}, {Name: "Genre2"}} {
		_, err := f.genres.Save(ctx, g)
		require.NoError(t, err)
	}
	return f
}

func (f *fixture) bookCount(t *testing.T) int {
	t.Helper()
	all, err := f.books.FindAll(context.Background())
	require.NoError(t, err)
	return len(all)
}

func TestBookServiceCreate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	book, err := f.svc.Create(ctx, "Book1", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "Book1", book.Title)
	assert.Equal(t, int64(1), book.Author.ID)
	assert.Equal(t, "Author1", book.Author.FullName)
	assert.Equal(t, int64(2), book.Genre.ID)
	assert.Positive(t, book.ID)

	stored, err := f.svc.FindByID(ctx, book.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, book, *stored)
}

func TestBookServiceCreateValidation(t *testing.T) {
	titles := map[string]string{
		"short": "tr",
		"blank": "   ",
		"empty": "",
	}
	for name, title := range titles {
		t.Run(name, func(t *testing.T) {
			f := setup(t)

			_, err := f.svc.Create(context.Background(), title, 1, 1)

			var vErr *services.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, 1)
			assert.Equal(t, "title", vErr.Fields[0].Field)
			assert.Zero(t, f.bookCount(t), "repository must stay untouched")
		})
	}
}

func TestBookServiceCreateMissingRefs(t *testing.T) {
	t.Run("author", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.Create(context.Background(), "Book1", 99, 1)
		require.ErrorIs(t, err, services.ErrNotFound)
		assert.Zero(t, f.bookCount(t))
	})
	t.Run("genre", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.Create(context.Background(), "Book1", 1, 99)
		require.ErrorIs(t, err, services.ErrNotFound)
		assert.Zero(t, f.bookCount(t))
	})
}

func TestBookServiceUpdate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "Book1", 1, 1)
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, created.ID, "Book1 edited", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Book1 edited", updated.Title)
	assert.Equal(t, int64(2), updated.Author.ID)
	assert.Equal(t, int64(2), updated.Genre.ID)

	stored, err := f.svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, updated, *stored)
	assert.Equal(t, 1, f.bookCount(t))
}

func TestBookServiceUpdateMissingBook(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Update(context.Background(), 42, "Book1", 1, 1)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestBookServiceUpdateValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "Book1", 1, 1)
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, created.ID, "tr", 1, 1)
	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)

	stored, err := f.svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Book1", stored.Title, "repository must stay untouched")
}

func TestBookServiceDeleteIsIdempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, "Book1", 1, 1)
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteByID(ctx, created.ID))
	stored, err := f.svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	// repeated delete of the same id still succeeds
	require.NoError(t, f.svc.DeleteByID(ctx, created.ID))
}

func TestBookServiceFindAllOrdered(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	for _, title := range []string{"Book1", "Book2", "Book3"} {
		_, err := f.svc.Create(ctx, title, 1, 1)
		require.NoError(t, err)
	}

	all, err := f.svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, b := range all {
		assert.Equal(t, int64(i+1), b.ID)
	}
}

func TestAuthorService(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := services.NewAuthorService(f.authors)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Author1", all[0].FullName)

	author, err := svc.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Author2", author.FullName)

	_, err = svc.FindByID(ctx, 99)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestGenreService(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	svc := services.NewGenreService(f.genres)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Genre1", all[0].Name)

	_, err = svc.FindByID(ctx, 99)
	require.ErrorIs(t, err, services.ErrNotFound)
}
