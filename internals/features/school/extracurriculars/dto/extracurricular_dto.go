package dto

import (
	"strings"

	"github.com/google/uuid"

	"siakadku_backend/internals/features/school/extracurriculars/model"
)

type ExtracurricularCreateDTO struct {
	ExtracurricularsName    string     `json:"extracurriculars_name" validate:"required,min=2,max=80"`
	ExtracurricularsCoachID *uuid.UUID `json:"extracurriculars_coach_id,omitempty"`
}

type ExtracurricularUpdateDTO struct {
	ExtracurricularsName    *string    `json:"extracurriculars_name,omitempty" validate:"omitempty,min=2,max=80"`
	ExtracurricularsCoachID *uuid.UUID `json:"extracurriculars_coach_id,omitempty"`
}

type ExtracurricularGradeUpsertDTO struct {
	ExtracurricularGradesStudentID  uuid.UUID `json:"extracurricular_grades_student_id"  validate:"required"`
	ExtracurricularGradesItemID     uuid.UUID `json:"extracurricular_grades_item_id"     validate:"required"`
	ExtracurricularGradesSemesterID uuid.UUID `json:"extracurricular_grades_semester_id" validate:"required"`
	ExtracurricularGradesPredicate  string    `json:"extracurricular_grades_predicate"   validate:"required,oneof=A B C D"`
	ExtracurricularGradesNote       string    `json:"extracurricular_grades_note"        validate:"omitempty,max=500"`
}

func (p *ExtracurricularCreateDTO) Normalize() {
	p.ExtracurricularsName = strings.TrimSpace(p.ExtracurricularsName)
}

func (p *ExtracurricularCreateDTO) ToModel() model.ExtracurricularModel {
	return model.ExtracurricularModel{
		ExtracurricularsName:    p.ExtracurricularsName,
		ExtracurricularsCoachID: p.ExtracurricularsCoachID,
	}
}

func (p *ExtracurricularUpdateDTO) ApplyUpdates(m *model.ExtracurricularModel) {
	if p.ExtracurricularsName != nil {
		m.ExtracurricularsName = strings.TrimSpace(*p.ExtracurricularsName)
	}
	if p.ExtracurricularsCoachID != nil {
		m.ExtracurricularsCoachID = p.ExtracurricularsCoachID
	}
}
