package dto

type UpsertReflectionRequest struct {
	WeekStartDate   string            `json:"week_start_date" validate:"required,datetime=2006-01-02"`
	WeekEndDate     string            `json:"week_end_date" validate:"required,datetime=2006-01-02"`
	OverallStatus   string            `json:"overall_status" validate:"required,oneof=safe warning over"`
	CategorySummary map[string]string `json:"category_summary" validate:"required"`
	AISuggestion    string            `json:"ai_suggestion"`
}

type ReflectionResponse struct {
	ID              string            `json:"id"`
	WeekStartDate   string            `json:"week_start_date"`
	WeekEndDate     string            `json:"week_end_date"`
	OverallStatus   string            `json:"overall_status"`
	CategorySummary map[string]string `json:"category_summary"`
	AISuggestion    string            `json:"ai_suggestion"`
	CreatedAt       string            `json:"created_at"`
}
