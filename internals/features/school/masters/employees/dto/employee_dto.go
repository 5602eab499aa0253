package dto

import (
	"strings"

	"siakadku_backend/internals/features/school/masters/employees/model"
)

type EmployeeCreateDTO struct {
	EmployeesNIP      *string `json:"employees_nip,omitempty"    validate:"omitempty,min=8,max=30"`
	EmployeesFullName string  `json:"employees_full_name"        validate:"required,min=2,max=120"`
	EmployeesPosition string  `json:"employees_position"         validate:"omitempty,max=60"`
	EmployeesPhone    *string `json:"employees_phone,omitempty"  validate:"omitempty,max=20"`
}

type EmployeeUpdateDTO struct {
	EmployeesNIP      *string `json:"employees_nip,omitempty"       validate:"omitempty,min=8,max=30"`
	EmployeesFullName *string `json:"employees_full_name,omitempty" validate:"omitempty,min=2,max=120"`
	EmployeesPosition *string `json:"employees_position,omitempty"  validate:"omitempty,max=60"`
	EmployeesPhone    *string `json:"employees_phone,omitempty"     validate:"omitempty,max=20"`
	EmployeesIsActive *bool   `json:"employees_is_active,omitempty"`
}

func (p *EmployeeCreateDTO) ToModel() model.EmployeeModel {
	pos := strings.TrimSpace(p.EmployeesPosition)
	if pos == "" {
		pos = "Guru"
	}
	return model.EmployeeModel{
		EmployeesNIP:      p.EmployeesNIP,
		EmployeesFullName: strings.TrimSpace(p.EmployeesFullName),
		EmployeesPosition: pos,
		EmployeesPhone:    p.EmployeesPhone,
		EmployeesIsActive: true,
	}
}

func (u *EmployeeUpdateDTO) ApplyUpdates(ent *model.EmployeeModel) {
	if u.EmployeesNIP != nil {
		ent.EmployeesNIP = u.EmployeesNIP
	}
	if u.EmployeesFullName != nil {
		ent.EmployeesFullName = strings.TrimSpace(*u.EmployeesFullName)
	}
	if u.EmployeesPosition != nil {
		ent.EmployeesPosition = strings.TrimSpace(*u.EmployeesPosition)
	}
	if u.EmployeesPhone != nil {
		ent.EmployeesPhone = u.EmployeesPhone
	}
	if u.EmployeesIsActive != nil {
		ent.EmployeesIsActive = *u.EmployeesIsActive
	}
}
