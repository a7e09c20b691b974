package dto

// CreateBookRequest is the write shape for creating a book. The id is
// assigned by the repository.
type CreateBookRequest struct {
	Title    string `json:"title" form:"title" binding:"required,min=3"`
	AuthorID int64  `json:"authorId" form:"authorId" binding:"required"`
	GenreID  int64  `json:"genreId" form:"genreId" binding:"required"`
}

// UpdateBookRequest is the write shape for updating an existing book.
type UpdateBookRequest struct {
	ID       int64  `json:"id" form:"id" binding:"required"`
	Title    string `json:"title" form:"title" binding:"required,min=3"`
	AuthorID int64  `json:"authorId" form:"authorId" binding:"required"`
	GenreID  int64  `json:"genreId" form:"genreId" binding:"required"`
}
