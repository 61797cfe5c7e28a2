package events

import "time"

const PayrollComputedTopic = "hr.payroll.computed.v1"

// PayrollComputedEvent announces that a payroll record got a fresh breakdown
// snapshot, either on create or on an input overwrite. Downstream ledgers key
// on employee+period.
type PayrollComputedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	Period     string    `json:"period"`
	NetPay     string    `json:"net_pay"`
	OccurredAt time.Time `json:"occurred_at"`
}
