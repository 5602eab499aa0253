// file: internals/features/school/assessments/weights/controller/weight_config_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teachingModel "siakadku_backend/internals/features/school/academics/teachings/model"
	"siakadku_backend/internals/features/school/assessments/weights/dto"
	"siakadku_backend/internals/features/school/assessments/weights/model"
	helper "siakadku_backend/internals/helpers"
)

const weightSumMessage = "Jumlah bobot Harian+PTS+PAS harus tepat 100"

type WeightConfigController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWeightConfigController(db *gorm.DB) *WeightConfigController {
	return &WeightConfigController{DB: db, Validator: validator.New()}
}

func (ctl *WeightConfigController) teachingExists(id uuid.UUID) (bool, error) {
	var cnt int64
	err := ctl.DB.Model(&teachingModel.TeachingModel{}).
		Where("teachings_id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (ctl *WeightConfigController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.WeightConfigModel{})
	if v := c.Query("teaching_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "teaching_id tidak valid")
		}
		dbq = dbq.Where("weight_configs_teaching_id = ?", id)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.WeightConfigModel
	if err := dbq.
		Order("weight_configs_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"weight_configs": list,
		"pagination":     helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *WeightConfigController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.WeightConfigModel
	if err := ctl.DB.First(&ent, "weight_configs_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Konfigurasi bobot tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

func (ctl *WeightConfigController) GetByTeaching(c *fiber.Ctx) error {
	teachingID, err := uuid.Parse(c.Params("teachingId"))
	if err != nil {
		return helper.BadRequest(c, "teachingId tidak valid")
	}

	var ent model.WeightConfigModel
	if err := ctl.DB.First(&ent, "weight_configs_teaching_id = ?", teachingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Konfigurasi bobot tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

func (ctl *WeightConfigController) Create(c *fiber.Ctx) error {
	var body dto.WeightConfigCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ent := body.ToModel()
	if ent.Sum() != 100 {
		return helper.BadRequest(c, weightSumMessage)
	}

	if ok, err := ctl.teachingExists(ent.WeightConfigsTeachingID); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if !ok {
		return helper.BadRequest(c, "Penugasan mengajar tidak ditemukan")
	}

	var cnt int64
	if err := ctl.DB.Model(&model.WeightConfigModel{}).
		Where("weight_configs_teaching_id = ?", ent.WeightConfigsTeachingID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Konfigurasi bobot untuk penugasan ini sudah ada")
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Konfigurasi bobot untuk penugasan ini sudah ada")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Konfigurasi bobot berhasil dibuat", ent)
}

func (ctl *WeightConfigController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.WeightConfigUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.WeightConfigModel
	if err := ctl.DB.First(&ent, "weight_configs_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Konfigurasi bobot tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	body.ApplyUpdates(&ent)
	if ent.Sum() != 100 {
		return helper.BadRequest(c, weightSumMessage)
	}

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Konfigurasi bobot berhasil diupdate", ent)
}

func (ctl *WeightConfigController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.WeightConfigModel
	if err := ctl.DB.First(&ent, "weight_configs_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Konfigurasi bobot tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Konfigurasi bobot berhasil dihapus", nil)
}

// BulkUpsert memproses tiap entri independen (create-or-update).
// Sengaja tidak atomik: entri gagal dicatat, entri lain tetap jalan.
func (ctl *WeightConfigController) BulkUpsert(c *fiber.Ctx) error {
	var body dto.BulkWeightRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	processed := make([]model.WeightConfigModel, 0, len(body.Entries))
	var errs []string

	for i, entry := range body.Entries {
		sum := entry.WeightConfigsDaily + entry.WeightConfigsMidterm + entry.WeightConfigsFinal
		if sum != 100 {
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, weightSumMessage))
			continue
		}
		if ok, err := ctl.teachingExists(entry.WeightConfigsTeachingID); err != nil {
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
			continue
		} else if !ok {
			errs = append(errs, fmt.Sprintf("entri %d: penugasan mengajar tidak ditemukan", i))
			continue
		}

		var ent model.WeightConfigModel
		err := ctl.DB.First(&ent, "weight_configs_teaching_id = ?", entry.WeightConfigsTeachingID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ent = model.WeightConfigModel{
				WeightConfigsTeachingID: entry.WeightConfigsTeachingID,
				WeightConfigsDaily:      entry.WeightConfigsDaily,
				WeightConfigsMidterm:    entry.WeightConfigsMidterm,
				WeightConfigsFinal:      entry.WeightConfigsFinal,
			}
			if err := ctl.DB.Create(&ent).Error; err != nil {
				errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
				continue
			}
		case err != nil:
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
			continue
		default:
			ent.WeightConfigsDaily = entry.WeightConfigsDaily
			ent.WeightConfigsMidterm = entry.WeightConfigsMidterm
			ent.WeightConfigsFinal = entry.WeightConfigsFinal
			if err := ctl.DB.Save(&ent).Error; err != nil {
				errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
				continue
			}
		}
		processed = append(processed, ent)
	}

	return helper.Success(c, "Upsert bobot selesai", fiber.Map{
		"processed": processed,
		"errors":    errs,
	})
}
