package dto

import (
	"github.com/google/uuid"

	"siakadku_backend/internals/features/school/assessments/weights/model"
)

type WeightConfigCreateDTO struct {
	WeightConfigsTeachingID uuid.UUID `json:"weight_configs_teaching_id" validate:"required"`
	WeightConfigsDaily      int       `json:"weight_configs_daily"       validate:"min=0,max=100"`
	WeightConfigsMidterm    int       `json:"weight_configs_midterm"     validate:"min=0,max=100"`
	WeightConfigsFinal      int       `json:"weight_configs_final"       validate:"min=0,max=100"`
}

type WeightConfigUpdateDTO struct {
	WeightConfigsDaily   *int `json:"weight_configs_daily,omitempty"   validate:"omitempty,min=0,max=100"`
	WeightConfigsMidterm *int `json:"weight_configs_midterm,omitempty" validate:"omitempty,min=0,max=100"`
	WeightConfigsFinal   *int `json:"weight_configs_final,omitempty"   validate:"omitempty,min=0,max=100"`
}

// BulkWeightEntry: satu entri upsert massal, divalidasi per entri.
type BulkWeightEntry struct {
	WeightConfigsTeachingID uuid.UUID `json:"weight_configs_teaching_id" validate:"required"`
	WeightConfigsDaily      int       `json:"weight_configs_daily"       validate:"min=0,max=100"`
	WeightConfigsMidterm    int       `json:"weight_configs_midterm"     validate:"min=0,max=100"`
	WeightConfigsFinal      int       `json:"weight_configs_final"       validate:"min=0,max=100"`
}

type BulkWeightRequest struct {
	Entries []BulkWeightEntry `json:"entries" validate:"required,min=1,dive"`
}

func (p *WeightConfigCreateDTO) ToModel() model.WeightConfigModel {
	return model.WeightConfigModel{
		WeightConfigsTeachingID: p.WeightConfigsTeachingID,
		WeightConfigsDaily:      p.WeightConfigsDaily,
		WeightConfigsMidterm:    p.WeightConfigsMidterm,
		WeightConfigsFinal:      p.WeightConfigsFinal,
	}
}

func (p *WeightConfigUpdateDTO) ApplyUpdates(m *model.WeightConfigModel) {
	if p.WeightConfigsDaily != nil {
		m.WeightConfigsDaily = *p.WeightConfigsDaily
	}
	if p.WeightConfigsMidterm != nil {
		m.WeightConfigsMidterm = *p.WeightConfigsMidterm
	}
	if p.WeightConfigsFinal != nil {
		m.WeightConfigsFinal = *p.WeightConfigsFinal
	}
}
