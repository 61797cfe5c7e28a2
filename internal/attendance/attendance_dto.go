package attendance

type ClockInRequest struct {
	Source string  `json:"source"`
	Notes  *string `json:"notes"`
}

type ClockOutRequest struct {
	Notes *string `json:"notes"`
}

type ManualAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	TimeIn     string  `json:"time_in"`
	TimeOut    string  `json:"time_out"`
	IsAbsent   bool    `json:"is_absent"`
	Notes      *string `json:"notes"`
}

// CorrectAttendanceRequest overwrites the raw clock pair; every derived
// figure is recomputed from it.
type CorrectAttendanceRequest struct {
	TimeIn   string  `json:"time_in"`
	TimeOut  string  `json:"time_out"`
	IsAbsent bool    `json:"is_absent"`
	Notes    *string `json:"notes"`
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name,omitempty"`
	AttendanceDate string  `json:"attendance_date"`
	TimeIn         string  `json:"time_in,omitempty"`
	TimeOut        string  `json:"time_out,omitempty"`
	HoursWorked    string  `json:"hours_worked"`
	LateHours      string  `json:"late_hours"`
	OvertimeHours  string  `json:"overtime_hours"`
	UndertimeHours string  `json:"undertime_hours"`
	Status         string  `json:"status"`
	IsAbsent       bool    `json:"is_absent"`
	Source         string  `json:"source"`
	Notes          *string `json:"notes,omitempty"`
}

// PeriodSummary aggregates one employee's records over a YYYY-MM period into
// the figures a payroll run starts from.
type PeriodSummary struct {
	EmployeeID     string `json:"employee_id"`
	Period         string `json:"period"`
	DaysWorked     int    `json:"days_worked"`
	AbsenceDays    int    `json:"absence_days"`
	LateDays       int    `json:"late_days"`
	HalfDays       int    `json:"half_days"`
	TotalHours     string `json:"total_hours"`
	LateHours      string `json:"late_hours"`
	OvertimeHours  string `json:"overtime_hours"`
	UndertimeHours string `json:"undertime_hours"`
}
