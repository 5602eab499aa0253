// file: internals/features/school/masters/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakadku_backend/internals/features/school/masters/employees/dto"
	"siakadku_backend/internals/features/school/masters/employees/model"
	helper "siakadku_backend/internals/helpers"
)

type EmployeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{DB: db, Validator: validator.New()}
}

func (ctl *EmployeeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	dbq := ctl.DB.Model(&model.EmployeeModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		dbq = dbq.Where("employees_full_name ILIKE ? OR employees_nip LIKE ?", like, like)
	}
	if active := c.Query("active"); active != "" {
		dbq = dbq.Where("employees_is_active = ?", active == "true")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.EmployeeModel
	if err := dbq.
		Order("employees_full_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"employees":  list,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *EmployeeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.EmployeeModel
	if err := ctl.DB.First(&ent, "employees_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Pegawai tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

func (ctl *EmployeeController) Create(c *fiber.Ctx) error {
	var body dto.EmployeeCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if body.EmployeesNIP != nil {
		var cnt int64
		if err := ctl.DB.Model(&model.EmployeeModel{}).
			Where("employees_nip = ?", *body.EmployeesNIP).
			Count(&cnt).Error; err != nil {
			return helper.DatabaseError(c, err, "")
		}
		if cnt > 0 {
			return helper.Conflict(c, "NIP sudah terdaftar")
		}
	}

	ent := body.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "NIP sudah terdaftar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pegawai berhasil dibuat", ent)
}

func (ctl *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.EmployeeUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.EmployeeModel
	if err := ctl.DB.First(&ent, "employees_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Pegawai tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	body.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "NIP sudah terdaftar")
	}

	return helper.Success(c, "Pegawai berhasil diupdate", ent)
}

func (ctl *EmployeeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.EmployeeModel
	if err := ctl.DB.First(&ent, "employees_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Pegawai tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Pegawai berhasil dihapus", nil)
}
