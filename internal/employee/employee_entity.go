package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleEmployee = "EMPLOYEE"
	RoleAdmin    = "ADMIN"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:uq_employees_email;not null"`
	Password     string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'EMPLOYEE'"`
	LeaveBalance int       `gorm:"type:int;not null;default:0"`
	Shares       int       `gorm:"type:int;not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
