package directory

import (
	"strings"

	"groomer/models"
)

// FilterSalons returns the salons whose name, address or any service label
// contains query, case-insensitively. An empty or blank query returns the
// input unchanged.
func FilterSalons(salons []models.Salon, query string) []models.Salon {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return salons
	}

	filtered := make([]models.Salon, 0, len(salons))
	for _, s := range salons {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Address), q) ||
			anyServiceMatches(s.Services, q) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func anyServiceMatches(services []string, q string) bool {
	for _, svc := range services {
		if strings.Contains(strings.ToLower(svc), q) {
			return true
		}
	}
	return false
}
