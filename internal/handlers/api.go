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
	"github.com/PavelChupin/OtusSpringHomeWork/internal/services"
)

// API serves the JSON endpoints.
type API struct {
	books *services.BookService
	log   zerolog.Logger
}

func (api *API) listBooks(c *gin.Context) {
	books, err := api.books.FindAll(c.Request.Context())
	if err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.BooksToResponses(books))
}

func (api *API) createBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	book, err := api.books.Create(c.Request.Context(), req.Title, req.AuthorID, req.GenreID)
	if err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.BookToResponse(book))
}

func (api *API) updateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	book, err := api.books.Update(c.Request.Context(), req.ID, req.Title, req.AuthorID, req.GenreID)
	if err != nil {
		api.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.BookToResponse(book))
}

func (api *API) deleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid book id"})
		return
	}

	if err := api.books.DeleteByID(c.Request.Context(), id); err != nil {
		api.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// writeError maps service errors onto status codes: ValidationError to 400
// with the per-field body, ErrNotFound to 404, everything else to 500.
func (api *API) writeError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: validationFields(vErr)})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		api.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

func writeBindingError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: bindingFields(vErrs)})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
}

func validationFields(vErr *services.ValidationError) []dto.FieldError {
	fields := make([]dto.FieldError, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, dto.FieldError{Field: f.Field, Message: f.Message})
	}
	return fields
}

func bindingFields(vErrs validator.ValidationErrors) []dto.FieldError {
	fields := make([]dto.FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, dto.FieldError{Field: fe.Field(), Message: bindingMessage(fe)})
	}
	return fields
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
