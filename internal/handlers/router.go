package handlers

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/services"
)

// SetupRouter wires both HTTP surfaces onto one gin engine. templates is the
// glob passed to the HTML renderer.
func SetupRouter(
	books *services.BookService,
	authors *services.AuthorService,
	genres *services.GenreService,
	templates string,
	log zerolog.Logger,
) *gin.Engine {
	registerTagNames()

	router := gin.New()
	router.Use(gin.Recovery())
	router.LoadHTMLGlob(templates)

	api := &API{books: books, log: log}
	router.GET("/list/api/v1", api.listBooks)
	router.POST("/create/api/v1", api.createBook)
	router.PUT("/edit/book/api/v1", api.updateBook)
	router.DELETE("/delete/book/api/v1/:id", api.deleteBook)

	pages := &Pages{books: books, authors: authors, genres: genres, log: log}
	router.GET("/list", pages.listBooks)
	router.GET("/create/book", pages.createBookForm)
	router.POST("/create/book", pages.createBook)
	router.GET("/edit/book/:id", pages.editBookForm)
	router.POST("/edit/book/:id", pages.editBook)
	router.GET("/delete/book/:id", pages.deleteBookForm)
	router.POST("/delete/book/:id", pages.deleteBook)

	return router
}

// registerTagNames makes binding errors report JSON field names instead of
// Go struct field names.
func registerTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
