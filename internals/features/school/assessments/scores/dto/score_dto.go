package dto

import (
	"github.com/google/uuid"
)

type ScoreUpsertDTO struct {
	ScoresAssessmentID uuid.UUID `json:"scores_assessment_id" validate:"required"`
	ScoresStudentID    uuid.UUID `json:"scores_student_id"    validate:"required"`
	ScoresValue        float64   `json:"scores_value"         validate:"min=0,max=100"`
}

type BulkScoreRequest struct {
	Entries []ScoreUpsertDTO `json:"entries" validate:"required,min=1,dive"`
}
