package dto

type GenerateChallengeRequest struct {
	Type         string `json:"type" validate:"omitempty,oneof=daily weekly monthly round-up no-spend saving-sprint incremental declutter habit-swap automation"`
	DurationDays int    `json:"duration_days" validate:"omitempty,gt=0"`
	Theme        string `json:"theme"`
}

type ContributeRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Date   string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}
