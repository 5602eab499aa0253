// file: internals/features/school/masters/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	semesterModel "siakadku_backend/internals/features/school/academics/semesters/model"
	classModel "siakadku_backend/internals/features/school/masters/classes/model"
	"siakadku_backend/internals/features/school/masters/enrollments/dto"
	"siakadku_backend/internals/features/school/masters/enrollments/model"
	studentModel "siakadku_backend/internals/features/school/masters/students/model"
	helper "siakadku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, Validator: validator.New()}
}

func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.EnrollmentModel{})
	if v := c.Query("class_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "class_id tidak valid")
		}
		dbq = dbq.Where("enrollments_class_id = ?", id)
	}
	if v := c.Query("semester_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "semester_id tidak valid")
		}
		dbq = dbq.Where("enrollments_semester_id = ?", id)
	}
	if v := c.Query("student_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "student_id tidak valid")
		}
		dbq = dbq.Where("enrollments_student_id = ?", id)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.EnrollmentModel
	if err := dbq.
		Order("enrollments_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"enrollments": list,
		"pagination":  helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.EnrollmentModel
	if err := ctl.DB.First(&ent, "enrollments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penempatan siswa tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	var body dto.EnrollmentCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("students_id = ?", body.EnrollmentsStudentID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Siswa tidak ditemukan")
	}

	if err := ctl.DB.Model(&classModel.ClassModel{}).
		Where("classes_id = ?", body.EnrollmentsClassID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Kelas tidak ditemukan")
	}

	if err := ctl.DB.Model(&semesterModel.SemesterModel{}).
		Where("semesters_id = ?", body.EnrollmentsSemesterID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Semester tidak ditemukan")
	}

	if err := ctl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollments_student_id = ? AND enrollments_semester_id = ?",
			body.EnrollmentsStudentID, body.EnrollmentsSemesterID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Siswa sudah ditempatkan pada semester ini")
	}

	ent := body.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Siswa sudah ditempatkan pada semester ini")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penempatan siswa berhasil dibuat", ent)
}

// Update memindahkan siswa ke kelas lain pada semester yang sama.
func (ctl *EnrollmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.EnrollmentUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}

	var ent model.EnrollmentModel
	if err := ctl.DB.First(&ent, "enrollments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penempatan siswa tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if body.EnrollmentsClassID != nil {
		var cnt int64
		if err := ctl.DB.Model(&classModel.ClassModel{}).
			Where("classes_id = ?", *body.EnrollmentsClassID).
			Count(&cnt).Error; err != nil {
			return helper.DatabaseError(c, err, "")
		}
		if cnt == 0 {
			return helper.BadRequest(c, "Kelas tidak ditemukan")
		}
	}

	body.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Penempatan siswa berhasil diupdate", ent)
}

func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.EnrollmentModel
	if err := ctl.DB.First(&ent, "enrollments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penempatan siswa tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Penempatan siswa berhasil dihapus", nil)
}
