// file: internals/features/school/extracurriculars/model/extracurricular_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExtracurricularModel struct {
	ExtracurricularsID   uuid.UUID `json:"extracurriculars_id"   gorm:"column:extracurriculars_id;type:uuid;primaryKey"`
	ExtracurricularsName string    `json:"extracurriculars_name" gorm:"column:extracurriculars_name;type:varchar(80);uniqueIndex;not null"`

	// pembina (opsional)
	ExtracurricularsCoachID *uuid.UUID `json:"extracurriculars_coach_id,omitempty" gorm:"column:extracurriculars_coach_id;type:uuid"`

	ExtracurricularsCreatedAt time.Time `json:"extracurriculars_created_at" gorm:"column:extracurriculars_created_at;autoCreateTime"`
	ExtracurricularsUpdatedAt time.Time `json:"extracurriculars_updated_at" gorm:"column:extracurriculars_updated_at;autoUpdateTime"`
}

func (ExtracurricularModel) TableName() string { return "extracurriculars" }

func (m *ExtracurricularModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExtracurricularsID == uuid.Nil {
		m.ExtracurricularsID = uuid.New()
	}
	return nil
}

// ExtracurricularGradeModel: satu nilai ekskul per
// (siswa, ekskul, semester), predikat A..D plus catatan.
type ExtracurricularGradeModel struct {
	ExtracurricularGradesID uuid.UUID `json:"extracurricular_grades_id" gorm:"column:extracurricular_grades_id;type:uuid;primaryKey"`

	ExtracurricularGradesStudentID uuid.UUID `json:"extracurricular_grades_student_id" gorm:"column:extracurricular_grades_student_id;type:uuid;not null;uniqueIndex:uq_extracurricular_grades_key"`
	ExtracurricularGradesItemID    uuid.UUID `json:"extracurricular_grades_item_id"    gorm:"column:extracurricular_grades_item_id;type:uuid;not null;uniqueIndex:uq_extracurricular_grades_key"`
	ExtracurricularGradesSemesterID uuid.UUID `json:"extracurricular_grades_semester_id" gorm:"column:extracurricular_grades_semester_id;type:uuid;not null;uniqueIndex:uq_extracurricular_grades_key"`

	ExtracurricularGradesPredicate string `json:"extracurricular_grades_predicate" gorm:"column:extracurricular_grades_predicate;type:varchar(1);not null"`
	ExtracurricularGradesNote      string `json:"extracurricular_grades_note"      gorm:"column:extracurricular_grades_note;type:text"`

	ExtracurricularGradesCreatedAt time.Time `json:"extracurricular_grades_created_at" gorm:"column:extracurricular_grades_created_at;autoCreateTime"`
	ExtracurricularGradesUpdatedAt time.Time `json:"extracurricular_grades_updated_at" gorm:"column:extracurricular_grades_updated_at;autoUpdateTime"`
}

func (ExtracurricularGradeModel) TableName() string { return "extracurricular_grades" }

func (m *ExtracurricularGradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExtracurricularGradesID == uuid.Nil {
		m.ExtracurricularGradesID = uuid.New()
	}
	return nil
}
