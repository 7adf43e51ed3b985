package events

import "time"

const EncashmentDecidedTopic = "leave.encashment.lifecycle.v1"

type EncashmentDecidedEvent struct {
	EventType    string    `json:"event_type"`
	EncashmentID string    `json:"encashment_id"`
	EmployeeID   string    `json:"employee_id"`
	LeaveDays    int       `json:"leave_days"`
	Shares       int       `json:"shares"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}
