// file: internals/features/school/masters/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrollmentModel menempatkan siswa pada satu kelas per semester.
// Satu siswa hanya boleh punya satu penempatan per semester.
type EnrollmentModel struct {
	EnrollmentsID uuid.UUID `json:"enrollments_id" gorm:"column:enrollments_id;type:uuid;primaryKey"`

	EnrollmentsStudentID  uuid.UUID `json:"enrollments_student_id"  gorm:"column:enrollments_student_id;type:uuid;not null;uniqueIndex:uq_enrollments_student_semester"`
	EnrollmentsSemesterID uuid.UUID `json:"enrollments_semester_id" gorm:"column:enrollments_semester_id;type:uuid;not null;uniqueIndex:uq_enrollments_student_semester;index:idx_enrollments_class_semester"`
	EnrollmentsClassID    uuid.UUID `json:"enrollments_class_id"    gorm:"column:enrollments_class_id;type:uuid;not null;index:idx_enrollments_class_semester"`

	EnrollmentsCreatedAt time.Time `json:"enrollments_created_at" gorm:"column:enrollments_created_at;autoCreateTime"`
	EnrollmentsUpdatedAt time.Time `json:"enrollments_updated_at" gorm:"column:enrollments_updated_at;autoUpdateTime"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

func (m *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrollmentsID == uuid.Nil {
		m.EnrollmentsID = uuid.New()
	}
	return nil
}
