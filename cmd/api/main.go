package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/config"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/handlers"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/repository"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/repository/memory"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/repository/sqlite"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	var (
		bookRepo   repository.BookRepository
		authorRepo repository.AuthorRepository
		genreRepo  repository.GenreRepository
	)
	if cfg.DBPath != "" {
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
		}
		defer db.Close()

		bookRepo = sqlite.NewBookRepository(db)
		authorRepo = sqlite.NewAuthorRepository(db)
		genreRepo = sqlite.NewGenreRepository(db)
		log.Info().Str("path", cfg.DBPath).Msg("using sqlite backend")
	} else {
		books := memory.NewBookRepository()
		authors := memory.NewAuthorRepository()
		genres := memory.NewGenreRepository()
		if err := seed(context.Background(), books, authors, genres); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}

		bookRepo, authorRepo, genreRepo = books, authors, genres
		log.Info().Msg("using in-memory backend with demo data")
	}

	bookService := services.NewBookService(bookRepo, authorRepo, genreRepo, log)
	authorService := services.NewAuthorService(authorRepo)
	genreService := services.NewGenreService(genreRepo)

	router := handlers.SetupRouter(bookService, authorService, genreService, cfg.Templates, log)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// seed fills the in-memory backend with a small demo catalog.
func seed(
	ctx context.Context,
	books repository.BookRepository,
	authors repository.AuthorRepository,
	genres repository.GenreRepository,
) error {
	tolstoy, err := authors.Save(ctx, models.Author{FullName: "Leo Tolstoy"})
	if err != nil {
		return err
	}
	dostoevsky, err := authors.Save(ctx, models.Author{FullName: "Fyodor Dostoevsky"})
	if err != nil {
		return err
	}

	novel, err := genres.Save(ctx, models.Genre{Name: "Novel"})
	if err != nil {
		return err
	}
	drama, err := genres.Save(ctx, models.Genre{Name: "Drama"})
	if err != nil {
		return err
	}

	for _, b := range []models.Book{
		{Title: "War and Peace", Author: tolstoy, Genre: novel},
		{Title: "Anna Karenina", Author: tolstoy, Genre: drama},
		{Title: "Crime and Punishment", Author: dostoevsky, Genre: novel},
	} {
		if _, err := books.Save(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
