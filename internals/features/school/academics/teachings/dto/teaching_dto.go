package dto

import (
	"github.com/google/uuid"

	"siakadku_backend/internals/features/school/academics/teachings/model"
)

type TeachingCreateDTO struct {
	TeachingsTeacherID  uuid.UUID `json:"teachings_teacher_id"  validate:"required"`
	TeachingsSubjectID  uuid.UUID `json:"teachings_subject_id"  validate:"required"`
	TeachingsClassID    uuid.UUID `json:"teachings_class_id"    validate:"required"`
	TeachingsSemesterID uuid.UUID `json:"teachings_semester_id" validate:"required"`
}

type TeachingUpdateDTO struct {
	TeachingsTeacherID  *uuid.UUID `json:"teachings_teacher_id,omitempty"`
	TeachingsSubjectID  *uuid.UUID `json:"teachings_subject_id,omitempty"`
	TeachingsClassID    *uuid.UUID `json:"teachings_class_id,omitempty"`
	TeachingsSemesterID *uuid.UUID `json:"teachings_semester_id,omitempty"`
}

func (p *TeachingCreateDTO) ToModel() model.TeachingModel {
	return model.TeachingModel{
		TeachingsTeacherID:  p.TeachingsTeacherID,
		TeachingsSubjectID:  p.TeachingsSubjectID,
		TeachingsClassID:    p.TeachingsClassID,
		TeachingsSemesterID: p.TeachingsSemesterID,
	}
}

func (p *TeachingUpdateDTO) ApplyUpdates(m *model.TeachingModel) {
	if p.TeachingsTeacherID != nil {
		m.TeachingsTeacherID = *p.TeachingsTeacherID
	}
	if p.TeachingsSubjectID != nil {
		m.TeachingsSubjectID = *p.TeachingsSubjectID
	}
	if p.TeachingsClassID != nil {
		m.TeachingsClassID = *p.TeachingsClassID
	}
	if p.TeachingsSemesterID != nil {
		m.TeachingsSemesterID = *p.TeachingsSemesterID
	}
}
