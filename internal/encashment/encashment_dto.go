package encashment

type SubmitEncashmentRequest struct {
	LeaveDays int `json:"leaveDays" binding:"required"`
}

type SubmitEncashmentResponse struct {
	Message string `json:"message"`
	Shares  int    `json:"shares"`
}

type DecideEncashmentRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type DecideEncashmentResponse struct {
	Message string `json:"message"`
}

type EncashmentResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName,omitempty"`
	EmployeeEmail string `json:"employeeEmail,omitempty"`
	LeaveDays     int    `json:"leaveDays"`
	Shares        int    `json:"shares"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}
