// Package memory holds map-backed repositories used as the default storage
// backend and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
)

// AuthorRepository keeps authors in a locked map with a sequential id
// counter.
type AuthorRepository struct {
	mu      sync.RWMutex
	authors map[int64]models.Author
	nextID  int64
}

func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{
		authors: make(map[int64]models.Author),
		nextID:  1,
	}
}

func (r *AuthorRepository) FindAll(_ context.Context) ([]models.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Author, 0, len(r.authors))
	for _, a := range r.authors {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *AuthorRepository) FindByID(_ context.Context, id int64) (*models.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AuthorRepository) Save(_ context.Context, author models.Author) (models.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if author.ID == 0 {
		author.ID = r.nextID
		r.nextID++
	} else if author.ID >= r.nextID {
		r.nextID = author.ID + 1
	}
	r.authors[author.ID] = author
	return author, nil
}

func (r *AuthorRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.authors, id)
	return nil
}

// GenreRepository keeps genres in a locked map with a sequential id counter.
type GenreRepository struct {
	mu     sync.RWMutex
	genres map[int64]models.Genre
	nextID int64
}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{
		genres: make(map[int64]models.Genre),
		nextID: 1,
	}
}

func (r *GenreRepository) FindAll(_ context.Context) ([]models.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		all = append(all, g)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *GenreRepository) FindByID(_ context.Context, id int64) (*models.Genre, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.genres[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *GenreRepository) Save(_ context.Context, genre models.Genre) (models.Genre, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if genre.ID == 0 {
		genre.ID = r.nextID
		r.nextID++
	} else if genre.ID >= r.nextID {
		r.nextID = genre.ID + 1
	}
	r.genres[genre.ID] = genre
	return genre, nil
}

func (r *GenreRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.genres, id)
	return nil
}

// BookRepository keeps books in a locked map with a sequential id counter.
// Books are stored with their author and genre embedded; the service layer
// resolves the references before Save.
type BookRepository struct {
	mu     sync.RWMutex
	books  map[int64]models.Book
	nextID int64
}

func NewBookRepository() *BookRepository {
	return &BookRepository{
		books:  make(map[int64]models.Book),
		nextID: 1,
	}
}

func (r *BookRepository) FindAll(_ context.Context) ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Book, 0, len(r.books))
	for _, b := range r.books {
		all = append(all, b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (r *BookRepository) FindByID(_ context.Context, id int64) (*models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *BookRepository) Save(_ context.Context, book models.Book) (models.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if book.ID == 0 {
		book.ID = r.nextID
		r.nextID++
	} else if book.ID >= r.nextID {
		r.nextID = book.ID + 1
	}
	r.books[book.ID] = book
	return book, nil
}

func (r *BookRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.books, id)
	return nil
}
