package model

// ServerTier is a fixed catalog entry. Tiers live in memory, they are not
// persisted.
type ServerTier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CPU         int    `json:"cpu"`
	Memory      int    `json:"memory"`
	Disk        int    `json:"disk"`
	Bandwidth   int    `json:"bandwidth"`
	Ports       int    `json:"ports"`
}

// CalculateRequest is the payload for the price quote endpoint
type CalculateRequest struct {
	CPU       int `json:"cpu" binding:"required,gt=0"`
	Memory    int `json:"memory" binding:"required,gt=0"`
	Disk      int `json:"disk" binding:"required,gt=0"`
	Bandwidth int `json:"bandwidth" binding:"required,gt=0"`
	Ports     int `json:"ports" binding:"required,gt=0"`
	Months    int `json:"months" binding:"required,gt=0"`
}
