// file: internals/features/school/assessments/scores/model/score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoreModel: nilai satu siswa pada satu penilaian, rentang 0..100.
// Kunci (assessment, student) unik; tulis kedua mengupdate di tempat.
type ScoreModel struct {
	ScoresID uuid.UUID `json:"scores_id" gorm:"column:scores_id;type:uuid;primaryKey"`

	ScoresAssessmentID uuid.UUID `json:"scores_assessment_id" gorm:"column:scores_assessment_id;type:uuid;not null;uniqueIndex:uq_scores_assessment_student"`
	ScoresStudentID    uuid.UUID `json:"scores_student_id"    gorm:"column:scores_student_id;type:uuid;not null;uniqueIndex:uq_scores_assessment_student"`

	ScoresValue float64 `json:"scores_value" gorm:"column:scores_value;not null"`

	ScoresCreatedAt time.Time `json:"scores_created_at" gorm:"column:scores_created_at;autoCreateTime"`
	ScoresUpdatedAt time.Time `json:"scores_updated_at" gorm:"column:scores_updated_at;autoUpdateTime"`
}

func (ScoreModel) TableName() string { return "scores" }

func (m *ScoreModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScoresID == uuid.Nil {
		m.ScoresID = uuid.New()
	}
	return nil
}
