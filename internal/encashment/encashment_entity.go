package encashment

import (
	"time"

	"go-encash/internal/employee"

	"github.com/google/uuid"
)

type Encashment struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID          `gorm:"type:uuid;not null;index:idx_encashments_employee"`
	Employee   *employee.Employee `gorm:"foreignKey:EmployeeID"`

	LeaveDays int `gorm:"type:int;not null"`
	Shares    int `gorm:"type:int;not null"`

	Status    string `gorm:"type:varchar(20);not null;default:'pending';index:idx_encashments_status"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
