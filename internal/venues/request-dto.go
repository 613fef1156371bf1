package venues

type CreateVenueRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	Address    string `json:"address" binding:"required,max=255"`
	City       string `json:"city" binding:"required,max=255"`
	State      string `json:"state" binding:"required,max=2"`
	Country    string `json:"country" binding:"required,max=2"`
	PostalCode string `json:"postal_code" binding:"required,max=20"`
	Website    string `json:"website" binding:"required,url"`
}

type UpdateVenueRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=255"`
	Capacity   *int    `json:"capacity" binding:"omitempty,min=1"`
	Address    *string `json:"address" binding:"omitempty,max=255"`
	City       *string `json:"city" binding:"omitempty,max=255"`
	State      *string `json:"state" binding:"omitempty,max=2"`
	Country    *string `json:"country" binding:"omitempty,max=2"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=20"`
	Website    *string `json:"website" binding:"omitempty,url"`
}
