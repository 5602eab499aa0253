package dto

import (
	"strings"

	"github.com/google/uuid"

	"siakadku_backend/internals/features/school/assessments/assessments/model"
)

type AssessmentCreateDTO struct {
	AssessmentsTeachingID uuid.UUID `json:"assessments_teaching_id" validate:"required"`
	AssessmentsName       string    `json:"assessments_name"        validate:"required,min=2,max=120"`
	AssessmentsType       string    `json:"assessments_type"        validate:"required,oneof=Harian PTS PAS"`
	AssessmentsCategory   string    `json:"assessments_category"    validate:"omitempty,oneof=Pengetahuan Keterampilan"`
}

type AssessmentUpdateDTO struct {
	AssessmentsName     *string `json:"assessments_name,omitempty"     validate:"omitempty,min=2,max=120"`
	AssessmentsType     *string `json:"assessments_type,omitempty"     validate:"omitempty,oneof=Harian PTS PAS"`
	AssessmentsCategory *string `json:"assessments_category,omitempty" validate:"omitempty,oneof=Pengetahuan Keterampilan"`
}

func (p *AssessmentCreateDTO) Normalize() {
	p.AssessmentsName = strings.TrimSpace(p.AssessmentsName)
	if p.AssessmentsCategory == "" {
		p.AssessmentsCategory = "Pengetahuan"
	}
}

func (p *AssessmentCreateDTO) ToModel() model.AssessmentModel {
	return model.AssessmentModel{
		AssessmentsTeachingID: p.AssessmentsTeachingID,
		AssessmentsName:       p.AssessmentsName,
		AssessmentsType:       p.AssessmentsType,
		AssessmentsCategory:   p.AssessmentsCategory,
	}
}

func (p *AssessmentUpdateDTO) ApplyUpdates(m *model.AssessmentModel) {
	if p.AssessmentsName != nil {
		m.AssessmentsName = strings.TrimSpace(*p.AssessmentsName)
	}
	if p.AssessmentsType != nil {
		m.AssessmentsType = *p.AssessmentsType
	}
	if p.AssessmentsCategory != nil {
		m.AssessmentsCategory = *p.AssessmentsCategory
	}
}
