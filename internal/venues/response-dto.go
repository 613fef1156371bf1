package venues

type VenueResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	Website    string `json:"website"`
}

// ToResponse maps a Venue row to its API shape.
func (v *Venue) ToResponse() VenueResponse {
	return VenueResponse{
		ID:         v.ID.String(),
		Name:       v.Name,
		Capacity:   v.Capacity,
		Address:    v.Address,
		City:       v.City,
		State:      v.State,
		Country:    v.Country,
		PostalCode: v.PostalCode,
		Website:    v.Website,
	}
}

func ToResponseList(venueList []Venue) []VenueResponse {
	responses := make([]VenueResponse, len(venueList))
	for i := range venueList {
		responses[i] = venueList[i].ToResponse()
	}
	return responses
}
