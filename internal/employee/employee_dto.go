package employee

type EmployeeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	LeaveBalance int    `json:"leaveBalance"`
	Shares       int    `json:"shares"`
}
