// file: internals/features/school/masters/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectsID   uuid.UUID `json:"subjects_id"   gorm:"column:subjects_id;type:uuid;primaryKey"`
	SubjectsCode string    `json:"subjects_code" gorm:"column:subjects_code;type:varchar(20);uniqueIndex;not null"`
	SubjectsName string    `json:"subjects_name" gorm:"column:subjects_name;type:varchar(120);not null"`

	SubjectsCreatedAt time.Time `json:"subjects_created_at" gorm:"column:subjects_created_at;autoCreateTime"`
	SubjectsUpdatedAt time.Time `json:"subjects_updated_at" gorm:"column:subjects_updated_at;autoUpdateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectsID == uuid.Nil {
		m.SubjectsID = uuid.New()
	}
	return nil
}
