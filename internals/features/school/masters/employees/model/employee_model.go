// file: internals/features/school/masters/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel merepresentasikan tabel "employees" (pegawai/guru).
type EmployeeModel struct {
	EmployeesID       uuid.UUID `gorm:"column:employees_id;type:uuid;primaryKey" json:"employees_id"`
	EmployeesNIP      *string   `gorm:"column:employees_nip;type:varchar(30);uniqueIndex:uq_employees_nip" json:"employees_nip,omitempty"`
	EmployeesFullName string    `gorm:"column:employees_full_name;type:varchar(120);not null" json:"employees_full_name"`
	EmployeesPosition string    `gorm:"column:employees_position;type:varchar(60);not null;default:'Guru'" json:"employees_position"`
	EmployeesPhone    *string   `gorm:"column:employees_phone;type:varchar(20)" json:"employees_phone,omitempty"`
	EmployeesIsActive bool      `gorm:"column:employees_is_active;not null;default:true" json:"employees_is_active"`

	EmployeesCreatedAt time.Time  `gorm:"column:employees_created_at;not null;default:CURRENT_TIMESTAMP" json:"employees_created_at"`
	EmployeesUpdatedAt *time.Time `gorm:"column:employees_updated_at" json:"employees_updated_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }

func (m *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if m.EmployeesID == uuid.Nil {
		m.EmployeesID = uuid.New()
	}
	return nil
}
