package orderstatus

import (
	"context"
	"fmt"
)

// Resolver maps canonical status names to their database ids. Status ids are
// assigned by seed data and must never be hard-coded; the resolver is built
// once at startup and read-only afterwards.
type Resolver struct {
	byName map[string]uint
}

// Load reads the status table and builds a resolver. It fails when any
// canonical status is missing, which points at broken seed data.
func Load(ctx context.Context, repo Repository) (*Resolver, error) {
	statuses, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load order statuses: %w", err)
	}

	byName := make(map[string]uint, len(statuses))
	for _, s := range statuses {
		byName[s.Name] = s.ID
	}

	return NewResolver(byName)
}

func NewResolver(byName map[string]uint) (*Resolver, error) {
	for _, required := range []string{StatusPending, StatusOutForDelivery, StatusCompleted} {
		if _, ok := byName[required]; !ok {
			return nil, fmt.Errorf("order status %q is not seeded", required)
		}
	}
	return &Resolver{byName: byName}, nil
}

func (r *Resolver) Pending() uint {
	return r.byName[StatusPending]
}

func (r *Resolver) OutForDelivery() uint {
	return r.byName[StatusOutForDelivery]
}

func (r *Resolver) Completed() uint {
	return r.byName[StatusCompleted]
}

// ID looks up any seeded status by name.
func (r *Resolver) ID(name string) (uint, bool) {
	id, ok := r.byName[name]
	return id, ok
}
