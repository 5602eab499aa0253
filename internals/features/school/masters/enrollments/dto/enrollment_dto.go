package dto

import (
	"github.com/google/uuid"

	"siakadku_backend/internals/features/school/masters/enrollments/model"
)

type EnrollmentCreateDTO struct {
	EnrollmentsStudentID  uuid.UUID `json:"enrollments_student_id"  validate:"required"`
	EnrollmentsSemesterID uuid.UUID `json:"enrollments_semester_id" validate:"required"`
	EnrollmentsClassID    uuid.UUID `json:"enrollments_class_id"    validate:"required"`
}

type EnrollmentUpdateDTO struct {
	EnrollmentsClassID *uuid.UUID `json:"enrollments_class_id,omitempty"`
}

func (p *EnrollmentCreateDTO) ToModel() model.EnrollmentModel {
	return model.EnrollmentModel{
		EnrollmentsStudentID:  p.EnrollmentsStudentID,
		EnrollmentsSemesterID: p.EnrollmentsSemesterID,
		EnrollmentsClassID:    p.EnrollmentsClassID,
	}
}

func (p *EnrollmentUpdateDTO) ApplyUpdates(m *model.EnrollmentModel) {
	if p.EnrollmentsClassID != nil {
		m.EnrollmentsClassID = *p.EnrollmentsClassID
	}
}
