// Package catalog holds the in-memory book collection and its borrow/return
// state machine.
package catalog

import (
	"iter"
	"slices"
)

// Catalog is an ordered collection of items keyed by ID.
// The zero value is an empty catalog ready to use.
//
// A Catalog is not safe for concurrent use; callers sharing one across
// goroutines must serialize every call themselves.
type Catalog struct {
	items []Item
}

func New() *Catalog { return &Catalog{} }

// Add appends a new, available item. IDs are not checked for uniqueness:
// a later duplicate stays hidden behind the first match until that one is
// removed.
func (c *Catalog) Add(title, author, id string) Outcome {
	c.items = append(c.items, Item{Title: title, Author: author, ID: id})
	return Added
}

func (c *Catalog) Remove(id string) Outcome {
	i := c.index(id)
	if i < 0 {
		return NotFound
	}
	c.items = slices.Delete(c.items, i, i+1)
	return Removed
}

func (c *Catalog) Borrow(id string) Outcome {
	i := c.index(id)
	switch {
	case i < 0:
		return NotFound
	case c.items[i].Borrowed:
		return AlreadyBorrowed
	}
	c.items[i].Borrowed = true
	return Borrowed
}

func (c *Catalog) Return(id string) Outcome {
	i := c.index(id)
	switch {
	case i < 0:
		return NotFound
	case !c.items[i].Borrowed:
		return NotBorrowed
	}
	c.items[i].Borrowed = false
	return Returned
}

// List yields copies of the items in insertion order. The sequence reads
// the catalog when it is ranged over, so ranging again after a mutation
// sees the new state.
func (c *Catalog) List() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range c.items {
			if !yield(it) {
				return
			}
		}
	}
}

// IsEmpty lets renderers show an empty-state message instead of an empty list.
func (c *Catalog) IsEmpty() bool { return len(c.items) == 0 }

func (c *Catalog) Len() int { return len(c.items) }

// Get returns a copy of the first item with the given ID.
func (c *Catalog) Get(id string) (Item, bool) {
	i := c.index(id)
	if i < 0 {
		return Item{}, false
	}
	return c.items[i], true
}

// Stats counts items by borrow state.
func (c *Catalog) Stats() (borrowed, available int) {
	for _, it := range c.items {
		if it.Borrowed {
			borrowed++
		} else {
			available++
		}
	}
	return
}

func (c *Catalog) index(id string) int {
	return slices.IndexFunc(c.items, func(it Item) bool { return it.ID == id })
}
