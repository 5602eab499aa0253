package dto

import (
	"strings"

	"siakadku_backend/internals/features/school/masters/subjects/model"
)

type SubjectCreateDTO struct {
	SubjectsCode string `json:"subjects_code" validate:"required,min=2,max=20"`
	SubjectsName string `json:"subjects_name" validate:"required,min=2,max=120"`
}

type SubjectUpdateDTO struct {
	SubjectsCode *string `json:"subjects_code,omitempty" validate:"omitempty,min=2,max=20"`
	SubjectsName *string `json:"subjects_name,omitempty" validate:"omitempty,min=2,max=120"`
}

func (p *SubjectCreateDTO) Normalize() {
	p.SubjectsCode = strings.ToUpper(strings.TrimSpace(p.SubjectsCode))
	p.SubjectsName = strings.TrimSpace(p.SubjectsName)
}

func (p *SubjectCreateDTO) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectsCode: p.SubjectsCode,
		SubjectsName: p.SubjectsName,
	}
}

func (p *SubjectUpdateDTO) ApplyUpdates(m *model.SubjectModel) {
	if p.SubjectsCode != nil {
		m.SubjectsCode = strings.ToUpper(strings.TrimSpace(*p.SubjectsCode))
	}
	if p.SubjectsName != nil {
		m.SubjectsName = strings.TrimSpace(*p.SubjectsName)
	}
}
