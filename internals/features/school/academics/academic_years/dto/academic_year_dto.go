package dto

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"siakadku_backend/internals/features/school/academics/academic_years/model"
)

var yearLabelRe = regexp.MustCompile(`^\d{4}/\d{4}$`)

type AcademicYearCreateDTO struct {
	AcademicYearsName string `json:"academic_years_name" validate:"required"`
}

// AcademicYearUpdateDTO hanya menerima perubahan label. Field status
// tetap ada di struct supaya payload yang mencoba mengubahnya bisa
// dideteksi dan ditolak; status hanya berubah lewat endpoint activate.
type AcademicYearUpdateDTO struct {
	AcademicYearsName   *string `json:"academic_years_name,omitempty"`
	AcademicYearsStatus *string `json:"academic_years_status,omitempty"`
}

func (p *AcademicYearCreateDTO) Normalize() {
	p.AcademicYearsName = strings.TrimSpace(p.AcademicYearsName)
}

// ValidateYearLabel menolak label selain format "YYYY/YYYY" dengan
// tahun kedua tepat satu setelah tahun pertama.
func ValidateYearLabel(label string) error {
	if !yearLabelRe.MatchString(label) {
		return fmt.Errorf("format tahun ajaran harus YYYY/YYYY")
	}
	first, _ := strconv.Atoi(label[:4])
	second, _ := strconv.Atoi(label[5:])
	if second != first+1 {
		return fmt.Errorf("tahun kedua harus tepat satu setelah tahun pertama")
	}
	return nil
}

func (p *AcademicYearCreateDTO) ToModel() model.AcademicYearModel {
	return model.AcademicYearModel{
		AcademicYearsName:   p.AcademicYearsName,
		AcademicYearsStatus: "Nonaktif",
	}
}

func (p *AcademicYearUpdateDTO) ApplyUpdates(m *model.AcademicYearModel) {
	if p.AcademicYearsName != nil {
		m.AcademicYearsName = strings.TrimSpace(*p.AcademicYearsName)
	}
}
