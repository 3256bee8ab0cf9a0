package dto

type UpdateProfileRequest struct {
	MonthlyIncome        float64 `json:"monthly_income" validate:"required,gt=0"`
	SavingsRate          float64 `json:"savings_rate" validate:"gte=0,lte=100"`
	DiscretionaryExpense float64 `json:"discretionary_expense" validate:"gte=0"`
}

type ProfileResponse struct {
	MonthlyIncome        float64 `json:"monthly_income"`
	SavingsRate          float64 `json:"savings_rate"`
	DiscretionaryExpense float64 `json:"discretionary_expense"`
	UpdatedAt            string  `json:"updated_at"`
}
