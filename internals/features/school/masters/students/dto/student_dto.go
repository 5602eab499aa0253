// file: internals/features/school/masters/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"siakadku_backend/internals/features/school/masters/students/model"
)

// =======================
// Request DTO
// =======================

type StudentCreateDTO struct {
	StudentsNIS       string     `json:"students_nis"       validate:"required,min=4,max=20"`
	StudentsNISN      string     `json:"students_nisn"      validate:"required,min=4,max=20"`
	StudentsFullName  string     `json:"students_full_name" validate:"required,min=2,max=120"`
	StudentsGender    string     `json:"students_gender"    validate:"required,oneof=L P"`
	StudentsBirthDate *time.Time `json:"students_birth_date,omitempty"`
	StudentsAddress   *string    `json:"students_address,omitempty"`
}

type StudentUpdateDTO struct {
	StudentsNIS       *string    `json:"students_nis,omitempty"       validate:"omitempty,min=4,max=20"`
	StudentsNISN      *string    `json:"students_nisn,omitempty"      validate:"omitempty,min=4,max=20"`
	StudentsFullName  *string    `json:"students_full_name,omitempty" validate:"omitempty,min=2,max=120"`
	StudentsGender    *string    `json:"students_gender,omitempty"    validate:"omitempty,oneof=L P"`
	StudentsBirthDate *time.Time `json:"students_birth_date,omitempty"`
	StudentsAddress   *string    `json:"students_address,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *StudentCreateDTO) Normalize() {
	p.StudentsNIS = strings.TrimSpace(p.StudentsNIS)
	p.StudentsNISN = strings.TrimSpace(p.StudentsNISN)
	p.StudentsFullName = strings.TrimSpace(p.StudentsFullName)
}

func (p *StudentCreateDTO) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentsNIS:       p.StudentsNIS,
		StudentsNISN:      p.StudentsNISN,
		StudentsFullName:  p.StudentsFullName,
		StudentsGender:    p.StudentsGender,
		StudentsBirthDate: p.StudentsBirthDate,
		StudentsAddress:   p.StudentsAddress,
	}
}

func (u *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	if u.StudentsNIS != nil {
		ent.StudentsNIS = strings.TrimSpace(*u.StudentsNIS)
	}
	if u.StudentsNISN != nil {
		ent.StudentsNISN = strings.TrimSpace(*u.StudentsNISN)
	}
	if u.StudentsFullName != nil {
		ent.StudentsFullName = strings.TrimSpace(*u.StudentsFullName)
	}
	if u.StudentsGender != nil {
		ent.StudentsGender = *u.StudentsGender
	}
	if u.StudentsBirthDate != nil {
		ent.StudentsBirthDate = u.StudentsBirthDate
	}
	if u.StudentsAddress != nil {
		ent.StudentsAddress = u.StudentsAddress
	}
}
