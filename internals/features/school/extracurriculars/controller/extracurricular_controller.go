// file: internals/features/school/extracurriculars/controller/extracurricular_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	semesterModel "siakadku_backend/internals/features/school/academics/semesters/model"
	"siakadku_backend/internals/features/school/extracurriculars/dto"
	"siakadku_backend/internals/features/school/extracurriculars/model"
	studentModel "siakadku_backend/internals/features/school/masters/students/model"
	helper "siakadku_backend/internals/helpers"
)

type ExtracurricularController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExtracurricularController(db *gorm.DB) *ExtracurricularController {
	return &ExtracurricularController{DB: db, Validator: validator.New()}
}

func (ctl *ExtracurricularController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	dbq := ctl.DB.Model(&model.ExtracurricularModel{})
	if search := c.Query("search"); search != "" {
		dbq = dbq.Where("extracurriculars_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.ExtracurricularModel
	if err := dbq.
		Order("extracurriculars_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"extracurriculars": list,
		"pagination":       helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *ExtracurricularController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.ExtracurricularModel
	if err := ctl.DB.First(&ent, "extracurriculars_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Ekstrakurikuler tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

func (ctl *ExtracurricularController) Create(c *fiber.Ctx) error {
	var body dto.ExtracurricularCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&model.ExtracurricularModel{}).
		Where("extracurriculars_name = ?", body.ExtracurricularsName).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Nama ekstrakurikuler sudah terdaftar")
	}

	ent := body.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Nama ekstrakurikuler sudah terdaftar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ekstrakurikuler berhasil dibuat", ent)
}

func (ctl *ExtracurricularController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.ExtracurricularUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.ExtracurricularModel
	if err := ctl.DB.First(&ent, "extracurriculars_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Ekstrakurikuler tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	body.ApplyUpdates(&ent)
	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Nama ekstrakurikuler sudah terdaftar")
	}

	return helper.Success(c, "Ekstrakurikuler berhasil diupdate", ent)
}

func (ctl *ExtracurricularController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.ExtracurricularModel
	if err := ctl.DB.First(&ent, "extracurriculars_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Ekstrakurikuler tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	var cnt int64
	if err := ctl.DB.Model(&model.ExtracurricularGradeModel{}).
		Where("extracurricular_grades_item_id = ?", id).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Ekstrakurikuler masih memiliki nilai siswa")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Ekstrakurikuler berhasil dihapus", nil)
}

// UpsertGrade: satu nilai per (siswa, ekskul, semester).
func (ctl *ExtracurricularController) UpsertGrade(c *fiber.Ctx) error {
	var body dto.ExtracurricularGradeUpsertDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("students_id = ?", body.ExtracurricularGradesStudentID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Siswa tidak ditemukan")
	}
	if err := ctl.DB.Model(&model.ExtracurricularModel{}).
		Where("extracurriculars_id = ?", body.ExtracurricularGradesItemID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Ekstrakurikuler tidak ditemukan")
	}
	if err := ctl.DB.Model(&semesterModel.SemesterModel{}).
		Where("semesters_id = ?", body.ExtracurricularGradesSemesterID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Semester tidak ditemukan")
	}

	var ent model.ExtracurricularGradeModel
	err := ctl.DB.First(&ent,
		"extracurricular_grades_student_id = ? AND extracurricular_grades_item_id = ? AND extracurricular_grades_semester_id = ?",
		body.ExtracurricularGradesStudentID, body.ExtracurricularGradesItemID, body.ExtracurricularGradesSemesterID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ent = model.ExtracurricularGradeModel{
			ExtracurricularGradesStudentID:  body.ExtracurricularGradesStudentID,
			ExtracurricularGradesItemID:     body.ExtracurricularGradesItemID,
			ExtracurricularGradesSemesterID: body.ExtracurricularGradesSemesterID,
			ExtracurricularGradesPredicate:  body.ExtracurricularGradesPredicate,
			ExtracurricularGradesNote:       body.ExtracurricularGradesNote,
		}
		if err := ctl.DB.Create(&ent).Error; err != nil {
			return helper.DatabaseError(c, err, "Nilai ekstrakurikuler untuk siswa ini sudah ada")
		}
	case err != nil:
		return helper.DatabaseError(c, err, "")
	default:
		ent.ExtracurricularGradesPredicate = body.ExtracurricularGradesPredicate
		ent.ExtracurricularGradesNote = body.ExtracurricularGradesNote
		if err := ctl.DB.Save(&ent).Error; err != nil {
			return helper.DatabaseError(c, err, "")
		}
	}

	return helper.Success(c, "Nilai ekstrakurikuler berhasil disimpan", ent)
}

// GradesByStudent mengembalikan nilai ekskul siswa, opsional difilter
// semester.
func (ctl *ExtracurricularController) GradesByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.BadRequest(c, "studentId tidak valid")
	}

	dbq := ctl.DB.Where("extracurricular_grades_student_id = ?", studentID)
	if v := c.Query("semester_id"); v != "" {
		semID, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "semester_id tidak valid")
		}
		dbq = dbq.Where("extracurricular_grades_semester_id = ?", semID)
	}

	var list []model.ExtracurricularGradeModel
	if err := dbq.Order("extracurricular_grades_created_at ASC").Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

func (ctl *ExtracurricularController) DeleteGrade(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.ExtracurricularGradeModel
	if err := ctl.DB.First(&ent, "extracurricular_grades_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Nilai ekstrakurikuler tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Nilai ekstrakurikuler berhasil dihapus", nil)
}
