// file: internals/features/school/academics/academic_years/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicYearModel merepresentasikan satu tahun ajaran (mis. "2024/2025").
// Paling banyak satu baris berstatus Aktif pada satu waktu.
type AcademicYearModel struct {
	AcademicYearsID     uuid.UUID `json:"academic_years_id"     gorm:"column:academic_years_id;type:uuid;primaryKey"`
	AcademicYearsName   string    `json:"academic_years_name"   gorm:"column:academic_years_name;type:varchar(9);uniqueIndex;not null"`
	AcademicYearsStatus string    `json:"academic_years_status" gorm:"column:academic_years_status;type:varchar(10);not null;default:'Nonaktif'"`

	AcademicYearsCreatedAt time.Time `json:"academic_years_created_at" gorm:"column:academic_years_created_at;autoCreateTime"`
	AcademicYearsUpdatedAt time.Time `json:"academic_years_updated_at" gorm:"column:academic_years_updated_at;autoUpdateTime"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

func (m *AcademicYearModel) BeforeCreate(tx *gorm.DB) error {
	if m.AcademicYearsID == uuid.Nil {
		m.AcademicYearsID = uuid.New()
	}
	if m.AcademicYearsStatus == "" {
		m.AcademicYearsStatus = "Nonaktif"
	}
	return nil
}
