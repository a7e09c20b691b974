// Package sqlite holds repositories backed by a SQLite database. Book rows
// reference authors and genres by id; reads join the referenced rows so the
// service layer always sees fully populated books.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS authors (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	full_name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS genres (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS books (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	title     TEXT NOT NULL,
	author_id INTEGER NOT NULL REFERENCES authors(id),
	genre_id  INTEGER NOT NULL REFERENCES genres(id)
);
`

// Open opens the database at path and applies the schema. Use ":memory:" for
// an ephemeral database.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

type AuthorRepository struct {
	db *sql.DB
}

func NewAuthorRepository(db *sql.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]models.Author, error) {
	query, args, err := sq.Select("id", "full_name").From("authors").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select authors: %w", err)
	}
	defer rows.Close()

	var authors []models.Author
	for rows.Next() {
		var a models.Author
		if err := rows.Scan(&a.ID, &a.FullName); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *AuthorRepository) FindByID(ctx context.Context, id int64) (*models.Author, error) {
	query, args, err := sq.Select("id", "full_name").From("authors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var a models.Author
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.FullName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select author %d: %w", id, err)
	}
	return &a, nil
}

func (r *AuthorRepository) Save(ctx context.Context, author models.Author) (models.Author, error) {
	if author.ID == 0 {
		query, args, err := sq.Insert("authors").Columns("full_name").Values(author.FullName).ToSql()
		if err != nil {
			return models.Author{}, err
		}
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return models.Author{}, fmt.Errorf("insert author: %w", err)
		}
		author.ID, err = res.LastInsertId()
		if err != nil {
			return models.Author{}, err
		}
		return author, nil
	}

	query, args, err := sq.Update("authors").
		Set("full_name", author.FullName).
		Where(sq.Eq{"id": author.ID}).
		ToSql()
	if err != nil {
		return models.Author{}, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Author{}, fmt.Errorf("update author %d: %w", author.ID, err)
	}
	return author, nil
}

func (r *AuthorRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("authors").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	return nil
}

type GenreRepository struct {
	db *sql.DB
}

func NewGenreRepository(db *sql.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	query, args, err := sq.Select("id", "name").From("genres").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select genres: %w", err)
	}
	defer rows.Close()

	var genres []models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

func (r *GenreRepository) FindByID(ctx context.Context, id int64) (*models.Genre, error) {
	query, args, err := sq.Select("id", "name").From("genres").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var g models.Genre
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select genre %d: %w", id, err)
	}
	return &g, nil
}

func (r *GenreRepository) Save(ctx context.Context, genre models.Genre) (models.Genre, error) {
	if genre.ID == 0 {
		query, args, err := sq.Insert("genres").Columns("name").Values(genre.Name).ToSql()
		if err != nil {
			return models.Genre{}, err
		}
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return models.Genre{}, fmt.Errorf("insert genre: %w", err)
		}
		genre.ID, err = res.LastInsertId()
		if err != nil {
			return models.Genre{}, err
		}
		return genre, nil
	}

	query, args, err := sq.Update("genres").
		Set("name", genre.Name).
		Where(sq.Eq{"id": genre.ID}).
		ToSql()
	if err != nil {
		return models.Genre{}, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Genre{}, fmt.Errorf("update genre %d: %w", genre.ID, err)
	}
	return genre, nil
}

func (r *GenreRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("genres").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete genre %d: %w", id, err)
	}
	return nil
}

type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

func bookSelect() sq.SelectBuilder {
	return sq.Select(
		"b.id", "b.title",
		"a.id", "a.full_name",
		"g.id", "g.name",
	).
		From("books b").
		Join("authors a ON a.id = b.author_id").
		Join("genres g ON g.id = b.genre_id")
}

func scanBook(row sq.RowScanner) (models.Book, error) {
	var b models.Book
	err := row.Scan(
		&b.ID, &b.Title,
		&b.Author.ID, &b.Author.FullName,
		&b.Genre.ID, &b.Genre.Name,
	)
	return b, err
}

func (r *BookRepository) FindAll(ctx context.Context) ([]models.Book, error) {
	query, args, err := bookSelect().OrderBy("b.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select books: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	query, args, err := bookSelect().Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	b, err := scanBook(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select book %d: %w", id, err)
	}
	return &b, nil
}

func (r *BookRepository) Save(ctx context.Context, book models.Book) (models.Book, error) {
	if book.ID == 0 {
		query, args, err := sq.Insert("books").
			Columns("title", "author_id", "genre_id").
			Values(book.Title, book.Author.ID, book.Genre.ID).
			ToSql()
		if err != nil {
			return models.Book{}, err
		}
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return models.Book{}, fmt.Errorf("insert book: %w", err)
		}
		book.ID, err = res.LastInsertId()
		if err != nil {
			return models.Book{}, err
		}
		return book, nil
	}

	query, args, err := sq.Update("books").
		Set("title", book.Title).
		Set("author_id", book.Author.ID).
		Set("genre_id", book.Genre.ID).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return models.Book{}, err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Book{}, fmt.Errorf("update book %d: %w", book.ID, err)
	}
	return book, nil
}

func (r *BookRepository) DeleteByID(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("books").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}
