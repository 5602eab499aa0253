// file: internals/features/school/assessments/scores/controller/score_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teachingModel "siakadku_backend/internals/features/school/academics/teachings/model"
	assessmentModel "siakadku_backend/internals/features/school/assessments/assessments/model"
	"siakadku_backend/internals/features/school/assessments/scores/dto"
	"siakadku_backend/internals/features/school/assessments/scores/model"
	enrollmentModel "siakadku_backend/internals/features/school/masters/enrollments/model"
	helper "siakadku_backend/internals/helpers"
)

// Ambang lulus rekap nilai.
const passThreshold = 75.0

type ScoreController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{DB: db, Validator: validator.New()}
}

// resolveGate memuat penilaian + penugasannya, lalu memastikan siswa
// memang terdaftar pada kelas penugasan itu di semester yang berlaku.
func (ctl *ScoreController) resolveGate(assessmentID, studentID uuid.UUID) (string, error) {
	var assessment assessmentModel.AssessmentModel
	if err := ctl.DB.First(&assessment, "assessments_id = ?", assessmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "Penilaian tidak ditemukan", nil
		}
		return "", err
	}

	var teaching teachingModel.TeachingModel
	if err := ctl.DB.First(&teaching, "teachings_id = ?", assessment.AssessmentsTeachingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "Penugasan mengajar tidak ditemukan", nil
		}
		return "", err
	}

	var cnt int64
	if err := ctl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollments_student_id = ? AND enrollments_class_id = ? AND enrollments_semester_id = ?",
			studentID, teaching.TeachingsClassID, teaching.TeachingsSemesterID).
		Count(&cnt).Error; err != nil {
		return "", err
	}
	if cnt == 0 {
		return "Siswa tidak terdaftar di kelas ini pada semester tersebut", nil
	}

	return "", nil
}

func (ctl *ScoreController) upsertOne(entry dto.ScoreUpsertDTO) (model.ScoreModel, error) {
	var ent model.ScoreModel
	err := ctl.DB.First(&ent,
		"scores_assessment_id = ? AND scores_student_id = ?",
		entry.ScoresAssessmentID, entry.ScoresStudentID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ent = model.ScoreModel{
			ScoresAssessmentID: entry.ScoresAssessmentID,
			ScoresStudentID:    entry.ScoresStudentID,
			ScoresValue:        entry.ScoresValue,
		}
		return ent, ctl.DB.Create(&ent).Error
	case err != nil:
		return ent, err
	default:
		ent.ScoresValue = entry.ScoresValue
		return ent, ctl.DB.Save(&ent).Error
	}
}

// Upsert: tulis pertama membuat, tulis kedua mengupdate di tempat.
func (ctl *ScoreController) Upsert(c *fiber.Ctx) error {
	var body dto.ScoreUpsertDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if msg, err := ctl.resolveGate(body.ScoresAssessmentID, body.ScoresStudentID); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if msg != "" {
		return helper.BadRequest(c, msg)
	}

	ent, err := ctl.upsertOne(body)
	if err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Nilai berhasil disimpan", ent)
}

// BulkUpsert memproses tiap entri independen; entri gagal dicatat
// tanpa membatalkan entri lain.
func (ctl *ScoreController) BulkUpsert(c *fiber.Ctx) error {
	var body dto.BulkScoreRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	processed := make([]model.ScoreModel, 0, len(body.Entries))
	var errs []string

	for i, entry := range body.Entries {
		if entry.ScoresValue < 0 || entry.ScoresValue > 100 {
			errs = append(errs, fmt.Sprintf("entri %d: nilai harus antara 0 dan 100", i))
			continue
		}
		msg, err := ctl.resolveGate(entry.ScoresAssessmentID, entry.ScoresStudentID)
		if err != nil {
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
			continue
		}
		if msg != "" {
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, msg))
			continue
		}
		ent, err := ctl.upsertOne(entry)
		if err != nil {
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
			continue
		}
		processed = append(processed, ent)
	}

	return helper.Success(c, "Upsert nilai selesai", fiber.Map{
		"processed": processed,
		"errors":    errs,
	})
}

func (ctl *ScoreController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.ScoreModel{})
	for param, col := range map[string]string{
		"assessment_id": "scores_assessment_id",
		"student_id":    "scores_student_id",
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

	var list []model.ScoreModel
	if err := dbq.
		Order("scores_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"scores":     list,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *ScoreController) ByAssessment(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("assessmentId"))
	if err != nil {
		return helper.BadRequest(c, "assessmentId tidak valid")
	}

	var list []model.ScoreModel
	if err := ctl.DB.
		Where("scores_assessment_id = ?", assessmentID).
		Order("scores_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

func (ctl *ScoreController) ByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.BadRequest(c, "studentId tidak valid")
	}

	var list []model.ScoreModel
	if err := ctl.DB.
		Where("scores_student_id = ?", studentID).
		Order("scores_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

// Recap meringkas nilai satu penilaian: min, max, rata-rata, dan
// jumlah yang mencapai ambang lulus.
func (ctl *ScoreController) Recap(c *fiber.Ctx) error {
	assessmentID, err := uuid.Parse(c.Params("assessmentId"))
	if err != nil {
		return helper.BadRequest(c, "assessmentId tidak valid")
	}

	var list []model.ScoreModel
	if err := ctl.DB.
		Where("scores_assessment_id = ?", assessmentID).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	if len(list) == 0 {
		return helper.Success(c, "OK", fiber.Map{
			"count": 0, "min": nil, "max": nil, "mean": nil, "passed": 0,
		})
	}

	minV, maxV, sum := list[0].ScoresValue, list[0].ScoresValue, 0.0
	passed := 0
	for _, s := range list {
		if s.ScoresValue < minV {
			minV = s.ScoresValue
		}
		if s.ScoresValue > maxV {
			maxV = s.ScoresValue
		}
		sum += s.ScoresValue
		if s.ScoresValue >= passThreshold {
			passed++
		}
	}

	return helper.Success(c, "OK", fiber.Map{
		"count":  len(list),
		"min":    minV,
		"max":    maxV,
		"mean":   sum / float64(len(list)),
		"passed": passed,
	})
}

func (ctl *ScoreController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.ScoreModel
	if err := ctl.DB.First(&ent, "scores_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Nilai tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Nilai berhasil dihapus", nil)
}
