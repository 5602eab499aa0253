// file: internals/features/school/academics/academic_years/controller/academic_year_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/academic_years/dto"
	"siakadku_backend/internals/features/school/academics/academic_years/model"
	semesterModel "siakadku_backend/internals/features/school/academics/semesters/model"
	helper "siakadku_backend/internals/helpers"
)

type AcademicYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAcademicYearController(db *gorm.DB) *AcademicYearController {
	return &AcademicYearController{DB: db, Validator: validator.New()}
}

func (ctl *AcademicYearController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	dbq := ctl.DB.Model(&model.AcademicYearModel{})
	if status := c.Query("status"); status != "" {
		dbq = dbq.Where("academic_years_status = ?", status)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.AcademicYearModel
	if err := dbq.
		Order("academic_years_name DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"academic_years": list,
		"pagination":     helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

// GetByID mengembalikan tahun ajaran beserta kedua semesternya.
func (ctl *AcademicYearController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.First(&ent, "academic_years_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tahun ajaran tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	var semesters []semesterModel.SemesterModel
	if err := ctl.DB.
		Where("semesters_academic_year_id = ?", id).
		Order("semesters_name ASC").
		Find(&semesters).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"academic_year": ent,
		"semesters":     semesters,
	})
}

func (ctl *AcademicYearController) GetActive(c *fiber.Ctx) error {
	var ent model.AcademicYearModel
	err := ctl.DB.First(&ent, "academic_years_status = ?", constants.StatusAktif).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tidak ada tahun ajaran aktif")
		}
		return helper.DatabaseError(c, err, "")
	}
	return helper.Success(c, "OK", ent)
}

// GetActivePeriod mengembalikan tahun ajaran aktif + semester aktifnya
// apa adanya, tanpa memaksakan konsistensi silang.
func (ctl *AcademicYearController) GetActivePeriod(c *fiber.Ctx) error {
	var year model.AcademicYearModel
	err := ctl.DB.First(&year, "academic_years_status = ?", constants.StatusAktif).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tidak ada tahun ajaran aktif")
		}
		return helper.DatabaseError(c, err, "")
	}

	var semesters []semesterModel.SemesterModel
	if err := ctl.DB.
		Where("semesters_academic_year_id = ? AND semesters_status = ?",
			year.AcademicYearsID, constants.StatusAktif).
		Find(&semesters).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"academic_year":    year,
		"active_semesters": semesters,
	})
}

func (ctl *AcademicYearController) Stats(c *fiber.Ctx) error {
	var total, active int64
	if err := ctl.DB.Model(&model.AcademicYearModel{}).Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if err := ctl.DB.Model(&model.AcademicYearModel{}).
		Where("academic_years_status = ?", constants.StatusAktif).
		Count(&active).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	return helper.Success(c, "OK", fiber.Map{
		"total":    total,
		"aktif":    active,
		"nonaktif": total - active,
	})
}

// Create membuat tahun ajaran baru beserta kedua semesternya
// (Ganjil, Genap) dalam satu transaksi. Semua lahir Nonaktif.
func (ctl *AcademicYearController) Create(c *fiber.Ctx) error {
	var body dto.AcademicYearCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := dto.ValidateYearLabel(body.AcademicYearsName); err != nil {
		return helper.BadRequest(c, err.Error())
	}

	var cnt int64
	if err := ctl.DB.Model(&model.AcademicYearModel{}).
		Where("academic_years_name = ?", body.AcademicYearsName).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Tahun ajaran sudah terdaftar")
	}

	ent := body.ToModel()
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ent).Error; err != nil {
			return err
		}
		for _, name := range []string{constants.SemesterGanjil, constants.SemesterGenap} {
			sem := semesterModel.SemesterModel{
				SemestersAcademicYearID: ent.AcademicYearsID,
				SemestersName:           name,
				SemestersStatus:         constants.StatusNonaktif,
			}
			if err := tx.Create(&sem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.DatabaseError(c, err, "Tahun ajaran sudah terdaftar")
	}

	var semesters []semesterModel.SemesterModel
	if err := ctl.DB.
		Where("semesters_academic_year_id = ?", ent.AcademicYearsID).
		Order("semesters_name ASC").
		Find(&semesters).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tahun ajaran berhasil dibuat", fiber.Map{
		"academic_year": ent,
		"semesters":     semesters,
	})
}

func (ctl *AcademicYearController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.AcademicYearUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.AcademicYearsStatus != nil {
		return helper.BadRequest(c, "Status tidak bisa diubah lewat endpoint ini; gunakan /academic-years/:id/activate")
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.First(&ent, "academic_years_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tahun ajaran tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if body.AcademicYearsName != nil && *body.AcademicYearsName != ent.AcademicYearsName {
		if err := dto.ValidateYearLabel(*body.AcademicYearsName); err != nil {
			return helper.BadRequest(c, err.Error())
		}
		var cnt int64
		if err := ctl.DB.Model(&model.AcademicYearModel{}).
			Where("academic_years_name = ? AND academic_years_id <> ?", *body.AcademicYearsName, id).
			Count(&cnt).Error; err != nil {
			return helper.DatabaseError(c, err, "")
		}
		if cnt > 0 {
			return helper.Conflict(c, "Tahun ajaran sudah terdaftar")
		}
	}

	body.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Tahun ajaran sudah terdaftar")
	}

	return helper.Success(c, "Tahun ajaran berhasil diupdate", ent)
}

// Delete menolak ketika tahun ajaran masih Aktif atau masih punya
// semester.
func (ctl *AcademicYearController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.AcademicYearModel
	if err := ctl.DB.First(&ent, "academic_years_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tahun ajaran tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}
	if ent.AcademicYearsStatus == constants.StatusAktif {
		return helper.Conflict(c, "Tahun ajaran aktif tidak bisa dihapus")
	}

	var cnt int64
	if err := ctl.DB.Model(&semesterModel.SemesterModel{}).
		Where("semesters_academic_year_id = ?", id).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Tahun ajaran masih memiliki semester")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Tahun ajaran berhasil dihapus", nil)
}

// Activate mengaktifkan satu tahun ajaran dan menonaktifkan semua yang
// lain dalam satu transaksi. Advisory lock global menserialisasikan
// aktivasi yang bersamaan.
func (ctl *AcademicYearController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.AcademicYearModel
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := helper.AdvisoryXactLock(tx, helper.LockKey("academic_year_activation")); err != nil {
			return err
		}
		if err := tx.First(&ent, "academic_years_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.AcademicYearModel{}).
			Where("academic_years_status = ?", constants.StatusAktif).
			Update("academic_years_status", constants.StatusNonaktif).Error; err != nil {
			return err
		}
		ent.AcademicYearsStatus = constants.StatusAktif
		return tx.Model(&model.AcademicYearModel{}).
			Where("academic_years_id = ?", id).
			Update("academic_years_status", constants.StatusAktif).Error
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Tahun ajaran tidak ditemukan")
		}
		return helper.DatabaseError(c, txErr, "")
	}

	return helper.Success(c, "Tahun ajaran berhasil diaktifkan", ent)
}
