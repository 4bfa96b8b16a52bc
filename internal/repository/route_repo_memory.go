package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/ferrybooking/internal/domain"
)

type RouteRepository interface {
	Get(ctx context.Context, shipName string) (domain.Route, bool)
	Bind(ctx context.Context, shipName string, route domain.Route) error
}

// MemoryRouteRepository binds a route to a ship name once. Later binds are rejected.
type MemoryRouteRepository struct {
	routes map[string]domain.Route
}

func NewRouteRepository() RouteRepository {
	return &MemoryRouteRepository{routes: make(map[string]domain.Route)}
}

func (r *MemoryRouteRepository) Get(ctx context.Context, shipName string) (domain.Route, bool) {
	route, ok := r.routes[shipName]
	return route, ok
}

func (r *MemoryRouteRepository) Bind(ctx context.Context, shipName string, route domain.Route) error {
	if _, ok := r.routes[shipName]; ok {
		return fmt.Errorf("%w: route for ship %q already recorded", domain.ErrConflict, shipName)
	}
	r.routes[shipName] = route
	return nil
}

var _ RouteRepository = (*MemoryRouteRepository)(nil)
