// Package catalog holds the static service catalog and the date/time slot
// generator. Nothing here mutates at runtime.
package catalog

import "groomer/models"

var womenServices = []models.Service{
	{ID: 1, Name: "Hair Cut & Style", Duration: "45 min", Price: "₹800", Category: models.CategoryWomen},
	{ID: 2, Name: "Hair Color", Duration: "2 hours", Price: "₹2500", Category: models.CategoryWomen},
	{ID: 3, Name: "Facial Treatment", Duration: "60 min", Price: "₹1200", Category: models.CategoryWomen},
	{ID: 4, Name: "Manicure & Pedicure", Duration: "90 min", Price: "₹1000", Category: models.CategoryWomen},
}

var menServices = []models.Service{
	{ID: 5, Name: "Hair Cut & Beard Trim", Duration: "30 min", Price: "₹500", Category: models.CategoryMen},
	{ID: 6, Name: "Premium Hair Cut", Duration: "45 min", Price: "₹800", Category: models.CategoryMen},
	{ID: 7, Name: "Hair Wash & Style", Duration: "25 min", Price: "₹300", Category: models.CategoryMen},
	{ID: 8, Name: "Face Cleanup", Duration: "40 min", Price: "₹600", Category: models.CategoryMen},
}

// ServicesByCategory returns a copy of the catalog for one category with the
// salon's image stamped onto every entry, so clients can render cards without
// a second fetch.
func ServicesByCategory(category models.Category, image string) []models.Service {
	var src []models.Service
	switch category {
	case models.CategoryMen:
		src = menServices
	default:
		src = womenServices
	}
	out := make([]models.Service, len(src))
	copy(out, src)
	for i := range out {
		out[i].Image = image
	}
	return out
}

// Lookup finds a service by id within a category. The bool reports whether
// the id exists there.
func Lookup(category models.Category, id int) (models.Service, bool) {
	for _, svc := range ServicesByCategory(category, "") {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// DefaultCategory maps an externally detected gender signal to the wizard's
// starting category. This is a one-time default, never re-evaluated.
func DefaultCategory(detectedGender string) models.Category {
	if detectedGender == "male" {
		return models.CategoryMen
	}
	return models.CategoryWomen
}
