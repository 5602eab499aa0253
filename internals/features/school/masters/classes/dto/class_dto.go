package dto

import (
	"strings"

	"github.com/google/uuid"

	"siakadku_backend/internals/features/school/masters/classes/model"
)

type ClassCreateDTO struct {
	ClassesName              string     `json:"classes_name"  validate:"required,min=1,max=60"`
	ClassesGrade             int        `json:"classes_grade" validate:"required,min=1,max=6"`
	ClassesHomeroomTeacherID *uuid.UUID `json:"classes_homeroom_teacher_id,omitempty"`
}

type ClassUpdateDTO struct {
	ClassesName              *string    `json:"classes_name,omitempty"  validate:"omitempty,min=1,max=60"`
	ClassesGrade             *int       `json:"classes_grade,omitempty" validate:"omitempty,min=1,max=6"`
	ClassesHomeroomTeacherID *uuid.UUID `json:"classes_homeroom_teacher_id,omitempty"`
}

func (p *ClassCreateDTO) Normalize() {
	p.ClassesName = strings.TrimSpace(p.ClassesName)
}

func (p *ClassCreateDTO) ToModel() model.ClassModel {
	return model.ClassModel{
		ClassesName:              p.ClassesName,
		ClassesGrade:             p.ClassesGrade,
		ClassesHomeroomTeacherID: p.ClassesHomeroomTeacherID,
	}
}

func (p *ClassUpdateDTO) ApplyUpdates(m *model.ClassModel) {
	if p.ClassesName != nil {
		m.ClassesName = strings.TrimSpace(*p.ClassesName)
	}
	if p.ClassesGrade != nil {
		m.ClassesGrade = *p.ClassesGrade
	}
	if p.ClassesHomeroomTeacherID != nil {
		m.ClassesHomeroomTeacherID = p.ClassesHomeroomTeacherID
	}
}
