package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/PavelChupin/OtusSpringHomeWork/internal/dto"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/mapper"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/models"
	"github.com/PavelChupin/OtusSpringHomeWork/internal/services"
)

// Pages serves the server-rendered HTML surface. Write routes redirect to
// /list on success; validation failures re-render the form with an "errors"
// entry in the model bag.
type Pages struct {
	books   *services.BookService
	authors *services.AuthorService
	genres  *services.GenreService
	log     zerolog.Logger
}

func (p *Pages) listBooks(c *gin.Context) {
	books, err := p.books.FindAll(c.Request.Context())
	if err != nil {
		p.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "list.html", gin.H{
		"books": mapper.BooksToResponses(books),
	})
}

func (p *Pages) createBookForm(c *gin.Context) {
	bag, err := p.referenceBag(c)
	if err != nil {
		p.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "create.html", bag)
}

func (p *Pages) createBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		p.rerenderForm(c, "create.html", nil, err)
		return
	}

	if _, err := p.books.Create(c.Request.Context(), req.Title, req.AuthorID, req.GenreID); err != nil {
		p.rerenderForm(c, "create.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/list")
}

func (p *Pages) editBookForm(c *gin.Context) {
	book, ok := p.lookupBook(c)
	if !ok {
		return
	}

	bag, err := p.referenceBag(c)
	if err != nil {
		p.renderError(c, err)
		return
	}
	bag["book"] = mapper.BookToResponse(*book)
	c.HTML(http.StatusOK, "edit.html", bag)
}

func (p *Pages) editBook(c *gin.Context) {
	book, ok := p.lookupBook(c)
	if !ok {
		return
	}

	var req dto.CreateBookRequest // id comes from the path, not the form
	if err := c.ShouldBind(&req); err != nil {
		p.rerenderForm(c, "edit.html", book, err)
		return
	}

	if _, err := p.books.Update(c.Request.Context(), book.ID, req.Title, req.AuthorID, req.GenreID); err != nil {
		p.rerenderForm(c, "edit.html", book, err)
		return
	}
	c.Redirect(http.StatusFound, "/list")
}

func (p *Pages) deleteBookForm(c *gin.Context) {
	book, ok := p.lookupBook(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "delete.html", gin.H{
		"book": mapper.BookToResponse(*book),
	})
}

func (p *Pages) deleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid book id")
		return
	}

	if err := p.books.DeleteByID(c.Request.Context(), id); err != nil {
		p.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/list")
}

// lookupBook resolves the :id path param to a book, writing the response
// itself when the id is malformed or unknown.
func (p *Pages) lookupBook(c *gin.Context) (*models.Book, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid book id")
		return nil, false
	}

	book, err := p.books.FindByID(c.Request.Context(), id)
	if err != nil {
		p.renderError(c, err)
		return nil, false
	}
	if book == nil {
		c.String(http.StatusNotFound, "book not found")
		return nil, false
	}
	return book, true
}

// referenceBag loads the author and genre lists every form needs.
func (p *Pages) referenceBag(c *gin.Context) (gin.H, error) {
	authors, err := p.authors.FindAll(c.Request.Context())
	if err != nil {
		return nil, err
	}
	genres, err := p.genres.FindAll(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return gin.H{
		"authors": mapper.AuthorsToResponses(authors),
		"genres":  mapper.GenresToResponses(genres),
	}, nil
}

func (p *Pages) rerenderForm(c *gin.Context, view string, book *models.Book, err error) {
	fields, ok := formErrors(err)
	if !ok {
		p.renderError(c, err)
		return
	}

	bag, refErr := p.referenceBag(c)
	if refErr != nil {
		p.renderError(c, refErr)
		return
	}
	bag["errors"] = fields
	if book != nil {
		bag["book"] = mapper.BookToResponse(*book)
	}
	c.HTML(http.StatusBadRequest, view, bag)
}

// formErrors extracts field errors from either a binding failure or a
// service-side validation failure.
func formErrors(err error) ([]dto.FieldError, bool) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return bindingFields(vErrs), true
	}
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return validationFields(vErr), true
	}
	return nil, false
}

func (p *Pages) renderError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.String(http.StatusNotFound, "not found")
		return
	}
	p.log.Error().Err(err).Str("path", c.FullPath()).Msg("page request failed")
	c.String(http.StatusInternalServerError, "internal error")
}
