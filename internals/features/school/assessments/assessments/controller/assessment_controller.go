// file: internals/features/school/assessments/assessments/controller/assessment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teachingModel "siakadku_backend/internals/features/school/academics/teachings/model"
	"siakadku_backend/internals/features/school/assessments/assessments/dto"
	"siakadku_backend/internals/features/school/assessments/assessments/model"
	scoreModel "siakadku_backend/internals/features/school/assessments/scores/model"
	helper "siakadku_backend/internals/helpers"
)

type AssessmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db, Validator: validator.New()}
}

func (ctl *AssessmentController) nameTaken(teachingID uuid.UUID, name, category string, excludeID *uuid.UUID) (bool, error) {
	q := ctl.DB.Model(&model.AssessmentModel{}).
		Where("assessments_teaching_id = ? AND assessments_name = ? AND assessments_category = ?",
			teachingID, name, category)
	if excludeID != nil {
		q = q.Where("assessments_id <> ?", *excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (ctl *AssessmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.AssessmentModel{})
	if v := c.Query("teaching_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.BadRequest(c, "teaching_id tidak valid")
		}
		dbq = dbq.Where("assessments_teaching_id = ?", id)
	}
	if v := c.Query("type"); v != "" {
		dbq = dbq.Where("assessments_type = ?", v)
	}
	if v := c.Query("category"); v != "" {
		dbq = dbq.Where("assessments_category = ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.AssessmentModel
	if err := dbq.
		Order("assessments_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"assessments": list,
		"pagination":  helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *AssessmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.AssessmentModel
	if err := ctl.DB.First(&ent, "assessments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penilaian tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

// ByTeaching mengembalikan penilaian satu penugasan beserta jumlah
// nilai yang sudah masuk per penilaian.
func (ctl *AssessmentController) ByTeaching(c *fiber.Ctx) error {
	teachingID, err := uuid.Parse(c.Params("teachingId"))
	if err != nil {
		return helper.BadRequest(c, "teachingId tidak valid")
	}

	var list []model.AssessmentModel
	if err := ctl.DB.
		Where("assessments_teaching_id = ?", teachingID).
		Order("assessments_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	type withCount struct {
		model.AssessmentModel
		ScoreCount int64 `json:"score_count"`
	}
	out := make([]withCount, 0, len(list))
	for _, a := range list {
		var cnt int64
		if err := ctl.DB.Model(&scoreModel.ScoreModel{}).
			Where("scores_assessment_id = ?", a.AssessmentsID).
			Count(&cnt).Error; err != nil {
			return helper.DatabaseError(c, err, "")
		}
		out = append(out, withCount{AssessmentModel: a, ScoreCount: cnt})
	}

	return helper.Success(c, "OK", out)
}

// ByTeacher mengembalikan penilaian semua penugasan satu guru.
func (ctl *AssessmentController) ByTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.BadRequest(c, "teacherId tidak valid")
	}

	var list []model.AssessmentModel
	if err := ctl.DB.
		Joins("JOIN teachings ON teachings.teachings_id = assessments.assessments_teaching_id").
		Where("teachings.teachings_teacher_id = ?", teacherID).
		Order("assessments.assessments_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

func (ctl *AssessmentController) Stats(c *fiber.Ctx) error {
	type row struct {
		Type  string `json:"type"`
		Count int64  `json:"count"`
	}
	var rows []row
	if err := ctl.DB.Model(&model.AssessmentModel{}).
		Select("assessments_type AS type, COUNT(*) AS count").
		Group("assessments_type").
		Scan(&rows).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var total int64
	perType := map[string]int64{}
	for _, r := range rows {
		perType[r.Type] = r.Count
		total += r.Count
	}

	return helper.Success(c, "OK", fiber.Map{
		"total":    total,
		"per_type": perType,
	})
}

func (ctl *AssessmentController) Create(c *fiber.Ctx) error {
	var body dto.AssessmentCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	body.Normalize()
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&teachingModel.TeachingModel{}).
		Where("teachings_id = ?", body.AssessmentsTeachingID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Penugasan mengajar tidak ditemukan")
	}

	if taken, err := ctl.nameTaken(body.AssessmentsTeachingID, body.AssessmentsName, body.AssessmentsCategory, nil); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if taken {
		return helper.Conflict(c, "Nama penilaian sudah dipakai pada aspek ini")
	}

	ent := body.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Nama penilaian sudah dipakai pada aspek ini")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penilaian berhasil dibuat", ent)
}

func (ctl *AssessmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.AssessmentUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.AssessmentModel
	if err := ctl.DB.First(&ent, "assessments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penilaian tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	body.ApplyUpdates(&ent)
	if taken, err := ctl.nameTaken(ent.AssessmentsTeachingID, ent.AssessmentsName, ent.AssessmentsCategory, &id); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if taken {
		return helper.Conflict(c, "Nama penilaian sudah dipakai pada aspek ini")
	}

	if err := ctl.DB.Save(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Nama penilaian sudah dipakai pada aspek ini")
	}

	return helper.Success(c, "Penilaian berhasil diupdate", ent)
}

// Delete menolak selama masih ada nilai yang menempel.
func (ctl *AssessmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.AssessmentModel
	if err := ctl.DB.First(&ent, "assessments_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Penilaian tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	var cnt int64
	if err := ctl.DB.Model(&scoreModel.ScoreModel{}).
		Where("scores_assessment_id = ?", id).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Penilaian masih memiliki nilai siswa")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Penilaian berhasil dihapus", nil)
}
