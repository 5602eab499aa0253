// file: internals/features/school/academics/teachings/model/teaching_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeachingModel: penugasan satu guru mengajar satu mapel di satu kelas
// pada satu semester. Tuple lengkapnya unik.
type TeachingModel struct {
	TeachingsID uuid.UUID `json:"teachings_id" gorm:"column:teachings_id;type:uuid;primaryKey"`

	TeachingsTeacherID  uuid.UUID `json:"teachings_teacher_id"  gorm:"column:teachings_teacher_id;type:uuid;not null;uniqueIndex:uq_teachings_tuple"`
	TeachingsSubjectID  uuid.UUID `json:"teachings_subject_id"  gorm:"column:teachings_subject_id;type:uuid;not null;uniqueIndex:uq_teachings_tuple"`
	TeachingsClassID    uuid.UUID `json:"teachings_class_id"    gorm:"column:teachings_class_id;type:uuid;not null;uniqueIndex:uq_teachings_tuple"`
	TeachingsSemesterID uuid.UUID `json:"teachings_semester_id" gorm:"column:teachings_semester_id;type:uuid;not null;uniqueIndex:uq_teachings_tuple"`

	TeachingsCreatedAt time.Time `json:"teachings_created_at" gorm:"column:teachings_created_at;autoCreateTime"`
	TeachingsUpdatedAt time.Time `json:"teachings_updated_at" gorm:"column:teachings_updated_at;autoUpdateTime"`
}

func (TeachingModel) TableName() string { return "teachings" }

func (m *TeachingModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeachingsID == uuid.Nil {
		m.TeachingsID = uuid.New()
	}
	return nil
}
