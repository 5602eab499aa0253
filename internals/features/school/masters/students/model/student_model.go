// file: internals/features/school/masters/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel "students" (siswa).
// NIS & NISN unik di level DB (partial index, soft-delete aware tidak dipakai di sini).
type StudentModel struct {
	StudentsID       uuid.UUID  `gorm:"column:students_id;type:uuid;primaryKey" json:"students_id"`
	StudentsNIS      string     `gorm:"column:students_nis;type:varchar(20);not null;uniqueIndex:uq_students_nis" json:"students_nis"`
	StudentsNISN     string     `gorm:"column:students_nisn;type:varchar(20);not null;uniqueIndex:uq_students_nisn" json:"students_nisn"`
	StudentsFullName string     `gorm:"column:students_full_name;type:varchar(120);not null" json:"students_full_name"`
	StudentsGender   string     `gorm:"column:students_gender;type:varchar(1);not null" json:"students_gender"`
	StudentsBirthDate *time.Time `gorm:"column:students_birth_date;type:date" json:"students_birth_date,omitempty"`
	StudentsAddress  *string    `gorm:"column:students_address;type:text" json:"students_address,omitempty"`

	StudentsCreatedAt time.Time  `gorm:"column:students_created_at;not null;default:CURRENT_TIMESTAMP" json:"students_created_at"`
	StudentsUpdatedAt *time.Time `gorm:"column:students_updated_at" json:"students_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentsID == uuid.Nil {
		m.StudentsID = uuid.New()
	}
	return nil
}
