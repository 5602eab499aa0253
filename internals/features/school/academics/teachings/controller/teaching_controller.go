// file: internals/features/school/academics/teachings/controller/teaching_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	semesterModel "siakadku_backend/internals/features/school/academics/semesters/model"
	"siakadku_backend/internals/features/school/academics/teachings/dto"
	"siakadku_backend/internals/features/school/academics/teachings/model"
	classModel "siakadku_backend/internals/features/school/masters/classes/model"
	employeeModel "siakadku_backend/internals/features/school/masters/employees/model"
	subjectModel "siakadku_backend/internals/features/school/masters/subjects/model"
	helper "siakadku_backend/internals/helpers"
)

type TeachingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeachingController(db *gorm.DB) *TeachingController {
	return &TeachingController{DB: db, Validator: validator.New()}
}

// checkRefs memastikan semua FK penugasan mengarah ke baris yang ada
// dan tingkat kelasnya 1..6.
func (ctl *TeachingController) checkRefs(teacherID, subjectID, classID, semesterID uuid.UUID) (string, error) {
	var cnt int64
	if err := ctl.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employees_id = ?", teacherID).Count(&cnt).Error; err != nil {
		return "", err
	}
	if cnt == 0 {
		return "Guru tidak ditemukan", nil
	}

	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subjects_id = ?", subjectID).Count(&cnt).Error; err != nil {
		return "", err
	}
	if cnt == 0 {
		return "Mata pelajaran tidak ditemukan", nil
	}

	var class classModel.ClassModel
	if err := ctl.DB.First(&class, "classes_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "Kelas tidak ditemukan", nil
		}
		return "", err
	}
	if class.ClassesGrade < 1 || class.ClassesGrade > 6 {
		return "Tingkat kelas harus antara 1 dan 6", nil
	}

	if err := ctl.DB.Model(&semesterModel.SemesterModel{}).
		Where("semesters_id = ?", semesterID).Count(&cnt).Error; err != nil {
		return "", err
	}
	if cnt == 0 {
		return "Semester tidak ditemukan", nil
	}

	return "", nil
}

func (ctl *TeachingController) tupleExists(m model.TeachingModel, excludeID *uuid.UUID) (bool, error) {
	q := ctl.DB.Model(&model.TeachingModel{}).
		Where("teachings_teacher_id = ? AND teachings_subject_id = ? AND teachings_class_id = ? AND teachings_semester_id = ?",
			m.TeachingsTeacherID, m.TeachingsSubjectID, m.TeachingsClassID, m.TeachingsSemesterID)
	if excludeID != nil {
		q = q.Where("teachings_id <> ?", *excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (ctl *TeachingController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.TeachingModel{})
	for param, col := range map[string]string{
		"teacher_id":  "teachings_teacher_id",
		"subject_id":  "teachings_subject_id",
		"class_id":    "teachings_class_id",
		"semester_id": "teachings_semester_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.BadRequest(c, param+" tidak valid")
			}
			dbq = dbq.Where(col+" = ?", id)
		}
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.TeachingModel
	if err := dbq.
		Order("teachings_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"teachings":  list,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *TeachingController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.TeachingModel
	if err := ctl.DB.First(&ent, "teachings_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penugasan mengajar tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

func (ctl *TeachingController) ByTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.BadRequest(c, "teacherId tidak valid")
	}

	dbq := ctl.DB.Where("teachings_teacher_id = ?", teacherID)
	if v := c.Query("semester_id"); v != "" {
		semID, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "semester_id tidak valid")
		}
		dbq = dbq.Where("teachings_semester_id = ?", semID)
	}

	var list []model.TeachingModel
	if err := dbq.Order("teachings_created_at ASC").Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

func (ctl *TeachingController) ByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.BadRequest(c, "classId tidak valid")
	}

	dbq := ctl.DB.Where("teachings_class_id = ?", classID)
	if v := c.Query("semester_id"); v != "" {
		semID, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "semester_id tidak valid")
		}
		dbq = dbq.Where("teachings_semester_id = ?", semID)
	}

	var list []model.TeachingModel
	if err := dbq.Order("teachings_created_at ASC").Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

func (ctl *TeachingController) Create(c *fiber.Ctx) error {
	var body dto.TeachingCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if msg, err := ctl.checkRefs(body.TeachingsTeacherID, body.TeachingsSubjectID,
		body.TeachingsClassID, body.TeachingsSemesterID); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if msg != "" {
		return helper.BadRequest(c, msg)
	}

	ent := body.ToModel()
	if dup, err := ctl.tupleExists(ent, nil); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if dup {
		return helper.Conflict(c, "Penugasan mengajar sudah terdaftar")
	}

	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Penugasan mengajar sudah terdaftar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penugasan mengajar berhasil dibuat", ent)
}

func (ctl *TeachingController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.TeachingUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}

	var ent model.TeachingModel
	if err := ctl.DB.First(&ent, "teachings_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penugasan mengajar tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	body.ApplyUpdates(&ent)

	if msg, err := ctl.checkRefs(ent.TeachingsTeacherID, ent.TeachingsSubjectID,
		ent.TeachingsClassID, ent.TeachingsSemesterID); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if msg != "" {
		return helper.BadRequest(c, msg)
	}

	if dup, err := ctl.tupleExists(ent, &id); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if dup {
		return helper.Conflict(c, "Penugasan mengajar sudah terdaftar")
	}

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Penugasan mengajar sudah terdaftar")
	}

	return helper.Success(c, "Penugasan mengajar berhasil diupdate", ent)
}

func (ctl *TeachingController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.TeachingModel
	if err := ctl.DB.First(&ent, "teachings_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penugasan mengajar tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Penugasan mengajar berhasil dihapus", nil)
}
