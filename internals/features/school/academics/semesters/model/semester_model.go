// file: internals/features/school/academics/semesters/model/semester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SemesterModel: tepat dua semester (Ganjil, Genap) per tahun ajaran,
// dibuat otomatis saat tahun ajaran dibuat. Paling banyak satu Aktif
// di antara saudara se-tahun ajaran.
type SemesterModel struct {
	SemestersID             uuid.UUID `json:"semesters_id"               gorm:"column:semesters_id;type:uuid;primaryKey"`
	SemestersAcademicYearID uuid.UUID `json:"semesters_academic_year_id" gorm:"column:semesters_academic_year_id;type:uuid;not null;uniqueIndex:uq_semesters_year_name"`
	SemestersName           string    `json:"semesters_name"             gorm:"column:semesters_name;type:varchar(10);not null;uniqueIndex:uq_semesters_year_name"` // Ganjil | Genap
	SemestersStatus         string    `json:"semesters_status"           gorm:"column:semesters_status;type:varchar(10);not null;default:'Nonaktif'"`

	SemestersCreatedAt time.Time `json:"semesters_created_at" gorm:"column:semesters_created_at;autoCreateTime"`
	SemestersUpdatedAt time.Time `json:"semesters_updated_at" gorm:"column:semesters_updated_at;autoUpdateTime"`
}

func (SemesterModel) TableName() string { return "semesters" }

func (m *SemesterModel) BeforeCreate(tx *gorm.DB) error {
	if m.SemestersID == uuid.Nil {
		m.SemestersID = uuid.New()
	}
	if m.SemestersStatus == "" {
		m.SemestersStatus = "Nonaktif"
	}
	return nil
}
