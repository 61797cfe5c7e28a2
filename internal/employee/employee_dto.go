package employee

type CreateEmployeeRequest struct {
	EmployeeNumber   string `json:"employee_number"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Department       string `json:"department" binding:"required"`
	Position         string `json:"position" binding:"required"`
	DailyRate        string `json:"daily_rate" binding:"required"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=Regular Probationary Contractual 'Part Time'"`
}

type UpdateEmployeeRequest struct {
	EmployeeNumber   string `json:"employee_number" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Department       string `json:"department" binding:"required"`
	Position         string `json:"position" binding:"required"`
	DailyRate        string `json:"daily_rate" binding:"required"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"omitempty,oneof=Regular Probationary Contractual 'Part Time'"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	EmployeeNumber   string `json:"employee_number"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Department       string `json:"department"`
	Position         string `json:"position"`
	DailyRate        string `json:"daily_rate"`
	HourlyRate       string `json:"hourly_rate"`
	HireDate         string `json:"hire_date"`
	EmploymentStatus string `json:"employment_status"`
}
