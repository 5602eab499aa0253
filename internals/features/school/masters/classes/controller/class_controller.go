// file: internals/features/school/masters/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakadku_backend/internals/features/school/masters/classes/dto"
	"siakadku_backend/internals/features/school/masters/classes/model"
	employeeModel "siakadku_backend/internals/features/school/masters/employees/model"
	helper "siakadku_backend/internals/helpers"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validator: validator.New()}
}

// ensureHomeroomTeacher memastikan wali kelas yang direferensikan ada.
func (ctl *ClassController) ensureHomeroomTeacher(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	var cnt int64
	if err := ctl.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employees_id = ?", *id).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	dbq := ctl.DB.Model(&model.ClassModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		dbq = dbq.Where("classes_name ILIKE ?", "%"+search+"%")
	}
	if grade := c.QueryInt("grade"); grade > 0 {
		dbq = dbq.Where("classes_grade = ?", grade)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.ClassModel
	if err := dbq.
		Order("classes_grade ASC, classes_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"classes":    list,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.ClassModel
	if err := ctl.DB.First(&ent, "classes_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kelas tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var body dto.ClassCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctl.ensureHomeroomTeacher(body.ClassesHomeroomTeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.BadRequest(c, "Wali kelas tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	var cnt int64
	if err := ctl.DB.Model(&model.ClassModel{}).
		Where("classes_name = ?", body.ClassesName).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Nama kelas sudah terdaftar")
	}

	ent := body.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Nama kelas sudah terdaftar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas berhasil dibuat", ent)
}

func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.ClassUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.ClassModel
	if err := ctl.DB.First(&ent, "classes_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kelas tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.ensureHomeroomTeacher(body.ClassesHomeroomTeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.BadRequest(c, "Wali kelas tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	body.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Nama kelas sudah terdaftar")
	}

	return helper.Success(c, "Kelas berhasil diupdate", ent)
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.ClassModel
	if err := ctl.DB.First(&ent, "classes_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kelas tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Kelas berhasil dihapus", nil)
}
