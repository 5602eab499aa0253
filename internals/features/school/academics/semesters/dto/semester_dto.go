package dto

import (
	"siakadku_backend/internals/features/school/academics/semesters/model"
)

// SemesterUpdateDTO hanya menerima perubahan nama. Field status tetap
// ada di struct supaya payload yang mencoba mengubahnya bisa dideteksi
// dan ditolak; status hanya berubah lewat endpoint activate.
type SemesterUpdateDTO struct {
	SemestersName   *string `json:"semesters_name,omitempty"   validate:"omitempty,oneof=Ganjil Genap"`
	SemestersStatus *string `json:"semesters_status,omitempty"`
}

func (p *SemesterUpdateDTO) ApplyUpdates(m *model.SemesterModel) {
	if p.SemestersName != nil {
		m.SemestersName = *p.SemestersName
	}
}
