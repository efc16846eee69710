package category

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrDefaultCategory is returned when a caller tries to delete one of the
// seeded default categories.
var ErrDefaultCategory = errors.New("default categories cannot be deleted")

// Category is a display bucket for expenses. Transactions reference a
// category only by id, so deleting a category never cascades.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault"`
}

// Registry is the ordered list of categories owned by a budget sheet.
type Registry struct {
	categories []Category
}

func NewRegistry(categories []Category) *Registry {
	return &Registry{categories: append([]Category(nil), categories...)}
}

// Add appends a user-defined category. Name and color uniqueness is not
// enforced; duplicates are allowed.
func (r *Registry) Add(name, color string) Category {
	c := Category{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		IsDefault: false,
	}
	r.categories = append(r.categories, c)
	return c
}

// Remove deletes the category with the given id. Default categories are
// refused regardless of caller. Removing an unknown id reports false without
// an error: absence is a normal outcome here.
func (r *Registry) Remove(id string) (bool, error) {
	for i, c := range r.categories {
		if c.ID != id {
			continue
		}
		if c.IsDefault {
			return false, ErrDefaultCategory
		}
		r.categories = append(r.categories[:i], r.categories[i+1:]...)
		return true, nil
	}
	return false, nil
}

// FindByID looks a category up by id. A miss is expected whenever a
// transaction still references a deleted category.
func (r *Registry) FindByID(id string) (Category, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func (r *Registry) Contains(id string) bool {
	_, ok := r.FindByID(id)
	return ok
}

// FindSavings returns the first category suitable for savings entries, by the
// same name markers the original sheet used.
func (r *Registry) FindSavings() (Category, bool) {
	for _, c := range r.categories {
		if strings.Contains(c.Name, "Keuangan") || strings.Contains(c.Name, "Tabungan") {
			return c, true
		}
	}
	return Category{}, false
}

// All returns a copy of the registry in insertion order.
func (r *Registry) All() []Category {
	return append([]Category(nil), r.categories...)
}

func (r *Registry) Len() int {
	return len(r.categories)
}
