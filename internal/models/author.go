package models

import "fmt"

// Author is a book author. The ID is assigned by the repository and stable
// once set.
type Author struct {
	ID       int64
	FullName string
}

func (a Author) String() string {
	return fmt.Sprintf("%s (#%d)", a.FullName, a.ID)
}
