// file: internals/features/school/academics/semesters/controller/semester_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/semesters/dto"
	"siakadku_backend/internals/features/school/academics/semesters/model"
	helper "siakadku_backend/internals/helpers"
)

// Semester tidak punya endpoint create: keduanya lahir bersama tahun
// ajarannya.
type SemesterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSemesterController(db *gorm.DB) *SemesterController {
	return &SemesterController{DB: db, Validator: validator.New()}
}

func (ctl *SemesterController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	dbq := ctl.DB.Model(&model.SemesterModel{})
	if status := c.Query("status"); status != "" {
		dbq = dbq.Where("semesters_status = ?", status)
	}
	if v := c.Query("academic_year_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "academic_year_id tidak valid")
		}
		dbq = dbq.Where("semesters_academic_year_id = ?", id)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.SemesterModel
	if err := dbq.
		Order("semesters_created_at ASC, semesters_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"semesters":  list,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *SemesterController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.SemesterModel
	if err := ctl.DB.First(&ent, "semesters_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Semester tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

func (ctl *SemesterController) GetActive(c *fiber.Ctx) error {
	var ent model.SemesterModel
	err := ctl.DB.First(&ent, "semesters_status = ?", constants.StatusAktif).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tidak ada semester aktif")
		}
		return helper.DatabaseError(c, err, "")
	}
	return helper.Success(c, "OK", ent)
}

func (ctl *SemesterController) Stats(c *fiber.Ctx) error {
	var total, active int64
	if err := ctl.DB.Model(&model.SemesterModel{}).Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if err := ctl.DB.Model(&model.SemesterModel{}).
		Where("semesters_status = ?", constants.StatusAktif).
		Count(&active).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	return helper.Success(c, "OK", fiber.Map{
		"total":    total,
		"aktif":    active,
		"nonaktif": total - active,
	})
}

func (ctl *SemesterController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.SemesterUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.SemestersStatus != nil {
		return helper.BadRequest(c, "Status tidak bisa diubah lewat endpoint ini; gunakan /semesters/:id/activate")
	}

	var ent model.SemesterModel
	if err := ctl.DB.First(&ent, "semesters_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Semester tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	body.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Semester dengan nama ini sudah ada pada tahun ajaran tersebut")
	}

	return helper.Success(c, "Semester berhasil diupdate", ent)
}

// Activate mengaktifkan satu semester dan menonaktifkan saudaranya
// se-tahun ajaran. Advisory lock per tahun ajaran menserialisasikan
// aktivasi bersamaan pada tahun yang sama.
func (ctl *SemesterController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.SemesterModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ent, "semesters_id = ?", id).Error; err != nil {
			return err
		}
		key := helper.LockKey("semester_activation", ent.SemestersAcademicYearID.String())
		if err := helper.AdvisoryXactLock(tx, key); err != nil {
			return err
		}
		if err := tx.Model(&model.SemesterModel{}).
			Where("semesters_academic_year_id = ?", ent.SemestersAcademicYearID).
			Update("semesters_status", constants.StatusNonaktif).Error; err != nil {
			return err
		}
		ent.SemestersStatus = constants.StatusAktif
		return tx.Model(&model.SemesterModel{}).
			Where("semesters_id = ?", id).
			Update("semesters_status", constants.StatusAktif).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Semester tidak ditemukan")
		}
		return helper.DatabaseError(c, txErr, "")
	}

	return helper.Success(c, "Semester berhasil diaktifkan", ent)
}
