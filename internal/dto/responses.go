package dto

type AuthorResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookResponse is the read shape for a book, with the referenced author and
// genre embedded.
type BookResponse struct {
	ID     int64          `json:"id"`
	Title  string         `json:"title"`
	Author AuthorResponse `json:"authorDto"`
	Genre  GenreResponse  `json:"genreDto"`
}

// FieldError names a violated constraint on a write request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
