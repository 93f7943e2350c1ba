package domain

// Address is the postal address shown next to the map.
type Address struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Neighborhood string `json:"neighborhood"`
}

// Location describes where the restaurant is; map rendering happens client side.
type Location struct {
	Address   Address `json:"address"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Phone     string  `json:"phone"`
}

func DefaultLocation() Location {
	return Location{
		Address: Address{
			Street:       "123 Culinary Avenue",
			City:         "New York",
			State:        "NY",
			Zip:          "10001",
			Neighborhood: "Foodville District",
		},
		Latitude:  40.712776,
		Longitude: -74.005974,
		Phone:     "(212) 555-1234",
	}
}
