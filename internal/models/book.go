package models

import "fmt"

// Book references exactly one Author and one Genre. The references are
// resolved by the service layer before a book is persisted.
type Book struct {
	ID     int64
	Title  string
	Author Author
	Genre  Genre
}

func (b Book) String() string {
	return fmt.Sprintf("%q by %s [%s]", b.Title, b.Author.FullName, b.Genre.Name)
}
