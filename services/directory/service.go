package directory

import (
	"context"
	"fmt"

	"groomer/database/repository/kv"
	"groomer/models"
	"groomer/utils"

	"go.uber.org/zap"
)

// ListSalons loads the directory, reseeding when the stored list is missing,
// empty or structurally broken. The read path never deletes stored data; use
// Refresh for that.
func (s *DefaultDirectoryService) ListSalons(ctx context.Context, query string, userPos *models.GeoPoint) ([]models.Salon, error) {
	salons, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	salons = FilterSalons(salons, query)
	if userPos != nil {
		SortByDistance(salons, *userPos)
	}
	return salons, nil
}

// GetSalon returns the directory entry with the given id.
func (s *DefaultDirectoryService) GetSalon(ctx context.Context, id int) (*models.Salon, error) {
	salons, err := s.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}
	for i := range salons {
		if salons[i].ID == id {
			return &salons[i], nil
		}
	}
	return nil, fmt.Errorf("salon %d not found", id)
}

// Refresh clears the stored salon list; the next ListSalons reseeds it.
func (s *DefaultDirectoryService) Refresh(ctx context.Context) error {
	if err := s.Store.Delete(ctx, utils.SalonsKey); err != nil {
		return fmt.Errorf("failed to clear salon data: %w", err)
	}
	return nil
}

func (s *DefaultDirectoryService) loadOrSeed(ctx context.Context) ([]models.Salon, error) {
	var salons []models.Salon
	err := s.Store.Get(ctx, utils.SalonsKey, &salons)
	if err != nil && err != kv.ErrNotFound {
		return nil, fmt.Errorf("failed to fetch salons: %w", err)
	}

	if needsReseed(salons) {
		utils.GetLogger().Info("directory: seeding sample salon data",
			zap.Int("existing", len(salons)))
		salons = SeedSalons()
		if err := s.Store.Set(ctx, utils.SalonsKey, salons); err != nil {
			return nil, fmt.Errorf("failed to store salon seed data: %w", err)
		}
	}
	return salons, nil
}

// needsReseed mirrors the legacy malformed-data check: entries written by old
// deployments lacked the location block entirely.
func needsReseed(salons []models.Salon) bool {
	if len(salons) == 0 {
		return true
	}
	for _, s := range salons {
		if s.Location.Lat == 0 && s.Location.Lng == 0 {
			return true
		}
	}
	return false
}
