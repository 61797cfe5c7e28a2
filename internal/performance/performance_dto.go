package performance

type CreateReviewRequest struct {
	EmployeeID   string  `json:"employee_id" binding:"required,uuid"`
	ReviewDate   string  `json:"review_date" binding:"required"`
	Period       string  `json:"period" binding:"required"`
	Rating       string  `json:"rating" binding:"required,oneof=Excellent Good Satisfactory 'Needs Improvement'"`
	Strengths    *string `json:"strengths"`
	Improvements *string `json:"improvements"`
	Goals        *string `json:"goals"`
	ReviewerName string  `json:"reviewer_name" binding:"required"`
}

// UpdateReviewRequest rewrites the review content; the reviewed employee
// never changes.
type UpdateReviewRequest struct {
	ReviewDate   string  `json:"review_date" binding:"required"`
	Period       string  `json:"period" binding:"required"`
	Rating       string  `json:"rating" binding:"required,oneof=Excellent Good Satisfactory 'Needs Improvement'"`
	Strengths    *string `json:"strengths"`
	Improvements *string `json:"improvements"`
	Goals        *string `json:"goals"`
	ReviewerName string  `json:"reviewer_name" binding:"required"`
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ReviewDate   string  `json:"review_date"`
	Period       string  `json:"period"`
	Rating       string  `json:"rating"`
	Strengths    *string `json:"strengths,omitempty"`
	Improvements *string `json:"improvements,omitempty"`
	Goals        *string `json:"goals,omitempty"`
	ReviewerName string  `json:"reviewer_name"`
}
