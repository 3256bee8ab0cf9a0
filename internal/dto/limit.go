package dto

type SetLimitRequest struct {
	Category    string  `json:"category" validate:"required,min=1"`
	LimitAmount float64 `json:"limit_amount" validate:"required,gt=0"`
	Cycle       string  `json:"cycle" validate:"required,oneof=weekly monthly"`
	IsActive    *bool   `json:"is_active"`
}

type LimitResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	LimitAmount float64 `json:"limit_amount"`
	Cycle       string  `json:"cycle"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
