// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceModel: kehadiran harian, satu baris per (siswa, tanggal).
type AttendanceModel struct {
	AttendancesID uuid.UUID `json:"attendances_id" gorm:"column:attendances_id;type:uuid;primaryKey"`

	AttendancesStudentID uuid.UUID `json:"attendances_student_id" gorm:"column:attendances_student_id;type:uuid;not null;uniqueIndex:uq_attendances_student_date"`
	AttendancesClassID   uuid.UUID `json:"attendances_class_id"   gorm:"column:attendances_class_id;type:uuid;not null"`

	AttendancesDate   string `json:"attendances_date"   gorm:"column:attendances_date;type:date;not null;uniqueIndex:uq_attendances_student_date"` // YYYY-MM-DD
	AttendancesStatus string `json:"attendances_status" gorm:"column:attendances_status;type:varchar(10);not null"`                                // Hadir | Sakit | Izin | Alpha

	AttendancesCreatedAt time.Time `json:"attendances_created_at" gorm:"column:attendances_created_at;autoCreateTime"`
	AttendancesUpdatedAt time.Time `json:"attendances_updated_at" gorm:"column:attendances_updated_at;autoUpdateTime"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendancesID == uuid.Nil {
		m.AttendancesID = uuid.New()
	}
	return nil
}
