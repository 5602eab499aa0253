// file: internals/features/school/masters/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassesID    uuid.UUID `json:"classes_id"    gorm:"column:classes_id;type:uuid;primaryKey"`
	ClassesName  string    `json:"classes_name"  gorm:"column:classes_name;type:varchar(60);uniqueIndex;not null"`
	ClassesGrade int       `json:"classes_grade" gorm:"column:classes_grade;not null"` // tingkat 1..6

	// wali kelas (opsional)
	ClassesHomeroomTeacherID *uuid.UUID `json:"classes_homeroom_teacher_id,omitempty" gorm:"column:classes_homeroom_teacher_id;type:uuid"`

	ClassesCreatedAt time.Time `json:"classes_created_at" gorm:"column:classes_created_at;autoCreateTime"`
	ClassesUpdatedAt time.Time `json:"classes_updated_at" gorm:"column:classes_updated_at;autoUpdateTime"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassesID == uuid.Nil {
		m.ClassesID = uuid.New()
	}
	return nil
}
