// Package jsonstore reads a JSON seed file of books into a catalog.
// The file is read once at startup and never written back.
package jsonstore

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/idilsaglam/library/internal/catalog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrDuplicateID is returned for a seed file that lists an ID twice.
// Catalog operations act on the first match, so a repeated entry could not
// be loaded with its own borrow state.
var ErrDuplicateID = errors.New("duplicate id")

// Load parses the seed file at path. A missing file yields an error
// wrapping os.ErrNotExist; a repeated ID yields ErrDuplicateID.
func Load(path string) ([]catalog.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var items []catalog.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if j, ok := seen[it.ID]; ok {
			return nil, fmt.Errorf("entries %d and %d: %w %q", j, i, ErrDuplicateID, it.ID)
		}
		seen[it.ID] = i
	}
	return items, nil
}

// Seed adds items to c in order. Borrowed entries go through Borrow so
// they follow the same transition as a user-driven loan.
func Seed(c *catalog.Catalog, items []catalog.Item) {
	for _, it := range items {
		c.Add(it.Title, it.Author, it.ID)
		if it.Borrowed {
			c.Borrow(it.ID)
		}
	}
}

// LoadInto is Load followed by Seed; it returns how many items were read.
func LoadInto(c *catalog.Catalog, path string) (int, error) {
	items, err := Load(path)
	if err != nil {
		return 0, err
	}
	Seed(c, items)
	return len(items), nil
}
