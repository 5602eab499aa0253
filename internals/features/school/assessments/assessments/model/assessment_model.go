// file: internals/features/school/assessments/assessments/model/assessment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssessmentModel: satu instrumen penilaian (ulangan harian, PTS, PAS)
// milik satu penugasan mengajar. Nama unik per (penugasan, aspek).
type AssessmentModel struct {
	AssessmentsID         uuid.UUID `json:"assessments_id"          gorm:"column:assessments_id;type:uuid;primaryKey"`
	AssessmentsTeachingID uuid.UUID `json:"assessments_teaching_id" gorm:"column:assessments_teaching_id;type:uuid;not null;uniqueIndex:uq_assessments_name_per_aspect"`

	AssessmentsName     string `json:"assessments_name"     gorm:"column:assessments_name;type:varchar(120);not null;uniqueIndex:uq_assessments_name_per_aspect"`
	AssessmentsType     string `json:"assessments_type"     gorm:"column:assessments_type;type:varchar(10);not null"`                                                       // Harian | PTS | PAS
	AssessmentsCategory string `json:"assessments_category" gorm:"column:assessments_category;type:varchar(15);not null;default:'Pengetahuan';uniqueIndex:uq_assessments_name_per_aspect"` // Pengetahuan | Keterampilan

	AssessmentsCreatedAt time.Time `json:"assessments_created_at" gorm:"column:assessments_created_at;autoCreateTime"`
	AssessmentsUpdatedAt time.Time `json:"assessments_updated_at" gorm:"column:assessments_updated_at;autoUpdateTime"`
}

func (AssessmentModel) TableName() string { return "assessments" }

func (m *AssessmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssessmentsID == uuid.Nil {
		m.AssessmentsID = uuid.New()
	}
	if m.AssessmentsCategory == "" {
		m.AssessmentsCategory = "Pengetahuan"
	}
	return nil
}
