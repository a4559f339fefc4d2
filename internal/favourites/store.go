// Package favourites persists the ordered list of favourited courses, unique
// by course id, and implements the membership toggle.
package favourites

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coursemate/coursemate/internal/models"
	"github.com/coursemate/coursemate/internal/storage"
)

// Store loads and toggles the favourites list.
type Store interface {
	// Load reads the persisted list. An absent key, or a storage read
	// failure, yields an empty list: the load is idempotent and the caller
	// recomputes from whatever is durable.
	Load(ctx context.Context) ([]models.Course, error)

	// Toggle removes the course when an element with the same id is present
	// in current, otherwise appends it; the result is persisted and
	// returned. The base list is the caller's in-memory copy at call time,
	// not a fresh read of storage, so overlapping toggles from the same base
	// can clobber each other - the controller serializes them.
	Toggle(ctx context.Context, current []models.Course, course models.Course) ([]models.Course, error)
}

type store struct {
	kv storage.Store
}

// NewStore returns a Store backed by the given key-value store.
func NewStore(kv storage.Store) Store {
	return &store{kv: kv}
}

func (s *store) Load(ctx context.Context) ([]models.Course, error) {
	data, err := s.kv.Get(ctx, storage.KeyFavourites)
	if err != nil || len(data) == 0 {
		return []models.Course{}, nil
	}

	var favs []models.Course
	if err := json.Unmarshal(data, &favs); err != nil {
		// Unreadable list reads as empty; the next toggle rewrites it.
		return []models.Course{}, nil
	}
	return favs, nil
}

func (s *store) Toggle(ctx context.Context, current []models.Course, course models.Course) ([]models.Course, error) {
	next := toggle(current, course)

	data, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("failed to encode favourites: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeyFavourites, data); err != nil {
		return nil, fmt.Errorf("failed to persist favourites: %w", err)
	}
	return next, nil
}

// toggle is the pure membership operation: applied twice from the same base
// list it returns the original list.
func toggle(current []models.Course, course models.Course) []models.Course {
	next := make([]models.Course, 0, len(current)+1)
	found := false
	for _, c := range current {
		if c.Id == course.Id {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		next = append(next, course)
	}
	return next
}
