package directory

import (
	"context"

	"groomer/database/repository/kv"
	"groomer/models"
)

// DirectoryService exposes the salon directory: listing with optional text
// filtering and distance sorting, plus an explicit reseed for operators.
type DirectoryService interface {
	// ListSalons returns the directory, filtered by query (substring match)
	// and sorted by distance when a user position is supplied.
	ListSalons(ctx context.Context, query string, userPos *models.GeoPoint) ([]models.Salon, error)
	// GetSalon returns a single directory entry by id.
	GetSalon(ctx context.Context, id int) (*models.Salon, error)
	// Refresh drops the stored salon list so the next read reseeds it.
	Refresh(ctx context.Context) error
}

// DefaultDirectoryService implements DirectoryService over the KV store.
type DefaultDirectoryService struct {
	Store kv.Store
}
