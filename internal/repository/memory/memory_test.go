package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/repository/memory"
)

func TestBookRepositoryAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBookRepository()

	for i, title := range []string{"Book1", "Book2", "Book3"} {
		book, err := repo.Save(ctx, models.Book{Title: title})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), book.ID)
	}
}

func TestBookRepositoryFindAllAscending(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBookRepository()

	// insert with explicit ids out of order
	for _, id := range []int64{3, 1, 2} {
		_, err := repo.Save(ctx, models.Book{ID: id, Title: "Book"})
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, b := range all {
		assert.Equal(t, int64(i+1), b.ID)
	}

	// the counter moved past the highest explicit id
	next, err := repo.Save(ctx, models.Book{Title: "Book4"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), next.ID)
}

func TestBookRepositoryFindByIDAbsent(t *testing.T) {
	repo := memory.NewBookRepository()

	book, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestBookRepositorySaveUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBookRepository()

	created, err := repo.Save(ctx, models.Book{Title: "Book1"})
	require.NoError(t, err)

	created.Title = "Book1 edited"
	_, err = repo.Save(ctx, created)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Book1 edited", all[0].Title)
}

func TestBookRepositoryDeleteNoOpWhenAbsent(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewBookRepository()

	require.NoError(t, repo.DeleteByID(ctx, 42))

	created, err := repo.Save(ctx, models.Book{Title: "Book1"})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteByID(ctx, created.ID))
	require.NoError(t, repo.DeleteByID(ctx, created.ID))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestAuthorAndGenreRepositories(t *testing.T) {
	ctx := context.Background()

	authors := memory.NewAuthorRepository()
	a, err := authors.Save(ctx, models.Author{FullName: "Author1"})
	require.NoError(t, err)
	got, err := authors.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Author1", got.FullName)

	genres := memory.NewGenreRepository()
	g, err := genres.Save(ctx, models.Genre{Name: "Genre1"})
	require.NoError(t, err)
	all, err := genres.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, g, all[0])
}
