package directory

import "groomer/models"

// SeedSalons returns the sample directory written on first load. IDs and
// coordinates are stable; clients key off them.
func SeedSalons() []models.Salon {
	return []models.Salon{
		{
			ID:        1,
			Name:      "Glamour Studio",
			Rating:    4.8,
			Reviews:   450,
			Address:   "123 Fashion Street, Mumbai, Maharashtra",
			Location:  models.GeoPoint{Lat: 19.0760, Lng: 72.8777},
			Image:     "https://images.unsplash.com/photo-1600948836101-f9ffda59d250?fm=jpg&q=80&w=1080",
			Services:  []string{"Hair Cut", "Hair Color", "Facial", "Manicure"},
			OpenTime:  "09:00 AM",
			CloseTime: "07:00 PM",
		},
		{
			ID:        2,
			Name:      "Elite Beauty Salon",
			Rating:    4.6,
			Reviews:   320,
			Address:   "456 Beauty Avenue, Delhi, Delhi",
			Location:  models.GeoPoint{Lat: 28.7041, Lng: 77.1025},
			Image:     "https://images.unsplash.com/photo-1702236240794-58dc4c6895e5?fm=jpg&q=80&w=1080",
			Services:  []string{"Hair Styling", "Spa Treatment", "Bridal Makeup", "Threading"},
			OpenTime:  "10:00 AM",
			CloseTime: "08:00 PM",
		},
		{
			ID:        3,
			Name:      "Men's Grooming Hub",
			Rating:    4.7,
			Reviews:   280,
			Address:   "789 Gents Corner, Bangalore, Karnataka",
			Location:  models.GeoPoint{Lat: 12.9716, Lng: 77.5946},
			Image:     "https://images.unsplash.com/photo-1638383257199-5772f668ec73?fm=jpg&q=80&w=1080",
			Services:  []string{"Hair Cut", "Beard Trim", "Face Cleanup", "Hair Wash"},
			OpenTime:  "09:00 AM",
			CloseTime: "09:00 PM",
		},
		{
			ID:        4,
			Name:      "Unisex Salon & Spa",
			Rating:    4.9,
			Reviews:   520,
			Address:   "321 Wellness Street, Pune, Maharashtra",
			Location:  models.GeoPoint{Lat: 18.5204, Lng: 73.8567},
			Image:     "https://images.unsplash.com/photo-1559185590-d545a0c5a1dc?fm=jpg&q=80&w=1080",
			Services:  []string{"Hair Services", "Spa Treatments", "Skin Care", "Nail Art"},
			OpenTime:  "08:00 AM",
			CloseTime: "10:00 PM",
		},
		{
			ID:        5,
			Name:      "Urban Style Lounge",
			Rating:    4.5,
			Reviews:   185,
			Address:   "567 Modern Plaza, Chennai, Tamil Nadu",
			Location:  models.GeoPoint{Lat: 13.0827, Lng: 80.2707},
			Image:     "https://images.unsplash.com/photo-1562322140-8baeececf3df?fm=jpg&q=80&w=1080",
			Services:  []string{"Hair Cut", "Hair Styling", "Coloring", "Hair Treatment"},
			OpenTime:  "10:00 AM",
			CloseTime: "08:00 PM",
		},
		{
			ID:        6,
			Name:      "Luxury Beauty Center",
			Rating:    4.8,
			Reviews:   340,
			Address:   "890 Elegance Road, Hyderabad, Telangana",
			Location:  models.GeoPoint{Lat: 17.3850, Lng: 78.4867},
			Image:     "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?fm=jpg&q=80&w=1080",
			Services:  []string{"Facial", "Makeup", "Spa", "Hair Services"},
			OpenTime:  "09:00 AM",
			CloseTime: "09:00 PM",
		},
	}
}
