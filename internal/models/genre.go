package models

import "fmt"

// Genre is a book genre.
type Genre struct {
	ID   int64
	Name string
}

func (g Genre) String() string {
	return fmt.Sprintf("%s (#%d)", g.Name, g.ID)
}
