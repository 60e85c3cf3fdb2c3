package catalog

import "errors"

var (
	ErrNotFound        = errors.New("book not found")
	ErrAlreadyBorrowed = errors.New("book is already borrowed")
	ErrNotBorrowed     = errors.New("book was not borrowed")
)

// Outcome reports what a catalog operation did. Lookups that miss and
// transitions from the wrong state are outcomes, not errors: the catalog
// is left untouched and the caller decides how to present them.
type Outcome int

const (
	Added Outcome = iota
	Removed
	Borrowed
	Returned
	NotFound
	AlreadyBorrowed
	NotBorrowed
)

// OK reports whether the operation changed the catalog.
func (o Outcome) OK() bool {
	switch o {
	case Added, Removed, Borrowed, Returned:
		return true
	}
	return false
}

// Err returns the sentinel error matching a failed outcome, or nil.
func (o Outcome) Err() error {
	switch o {
	case NotFound:
		return ErrNotFound
	case AlreadyBorrowed:
		return ErrAlreadyBorrowed
	case NotBorrowed:
		return ErrNotBorrowed
	}
	return nil
}

func (o Outcome) String() string {
	switch o {
	case Added:
		return "Book added successfully!"
	case Removed:
		return "Book removed successfully!"
	case Borrowed:
		return "Book borrowed successfully!"
	case Returned:
		return "Book returned successfully!"
	case NotFound:
		return "Book not found!"
	case AlreadyBorrowed:
		return "Book is already borrowed!"
	case NotBorrowed:
		return "Book was not borrowed!"
	}
	return "unknown outcome"
}
