// file: internals/features/school/assessments/weights/model/weight_config_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightConfigModel: bobot penilaian per penugasan mengajar.
// Bobot bilangan bulat dan jumlahnya harus tepat 100.
type WeightConfigModel struct {
	WeightConfigsID         uuid.UUID `json:"weight_configs_id"          gorm:"column:weight_configs_id;type:uuid;primaryKey"`
	WeightConfigsTeachingID uuid.UUID `json:"weight_configs_teaching_id" gorm:"column:weight_configs_teaching_id;type:uuid;not null;uniqueIndex"`

	WeightConfigsDaily   int `json:"weight_configs_daily"   gorm:"column:weight_configs_daily;not null"`   // Harian
	WeightConfigsMidterm int `json:"weight_configs_midterm" gorm:"column:weight_configs_midterm;not null"` // PTS
	WeightConfigsFinal   int `json:"weight_configs_final"   gorm:"column:weight_configs_final;not null"`   // PAS

	WeightConfigsCreatedAt time.Time `json:"weight_configs_created_at" gorm:"column:weight_configs_created_at;autoCreateTime"`
	WeightConfigsUpdatedAt time.Time `json:"weight_configs_updated_at" gorm:"column:weight_configs_updated_at;autoUpdateTime"`
}

func (WeightConfigModel) TableName() string { return "weight_configs" }

func (m *WeightConfigModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeightConfigsID == uuid.Nil {
		m.WeightConfigsID = uuid.New()
	}
	return nil
}

func (m *WeightConfigModel) Sum() int {
	return m.WeightConfigsDaily + m.WeightConfigsMidterm + m.WeightConfigsFinal
}
