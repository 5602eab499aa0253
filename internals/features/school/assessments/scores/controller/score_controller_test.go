package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	teachingModel "siakadku_backend/internals/features/school/academics/teachings/model"
	assessmentModel "siakadku_backend/internals/features/school/assessments/assessments/model"
	"siakadku_backend/internals/features/school/assessments/scores/model"
	enrollmentModel "siakadku_backend/internals/features/school/masters/enrollments/model"
)

type fixture struct {
	app        *fiber.App
	db         *gorm.DB
	assessment assessmentModel.AssessmentModel
	student    uuid.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&teachingModel.TeachingModel{},
		&assessmentModel.AssessmentModel{},
		&enrollmentModel.EnrollmentModel{},
		&model.ScoreModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	teaching := teachingModel.TeachingModel{
		TeachingsTeacherID:  uuid.New(),
		TeachingsSubjectID:  uuid.New(),
		TeachingsClassID:    uuid.New(),
		TeachingsSemesterID: uuid.New(),
	}
	if err := db.Create(&teaching).Error; err != nil {
		t.Fatalf("seed teaching: %v", err)
	}

	assessment := assessmentModel.AssessmentModel{
		AssessmentsTeachingID: teaching.TeachingsID,
		AssessmentsName:       "Ulangan Harian 1",
		AssessmentsType:       "Harian",
		AssessmentsCategory:   "Pengetahuan",
	}
	if err := db.Create(&assessment).Error; err != nil {
		t.Fatalf("seed assessment: %v", err)
	}

	student := uuid.New()
	enrollment := enrollmentModel.EnrollmentModel{
		EnrollmentsStudentID:  student,
		EnrollmentsSemesterID: teaching.TeachingsSemesterID,
		EnrollmentsClassID:    teaching.TeachingsClassID,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	ctl := NewScoreController(db)
	app := fiber.New()
	app.Post("/scores", ctl.Upsert)
	app.Post("/scores/bulk", ctl.BulkUpsert)

	return fixture{app: app, db: db, assessment: assessment, student: student}
}

func (f fixture) post(t *testing.T, path string, payload any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestUpsertScoreIdempotentPerKey(t *testing.T) {
	f := newFixture(t)

	first := f.post(t, "/scores", fiber.Map{
		"scores_assessment_id": f.assessment.AssessmentsID,
		"scores_student_id":    f.student,
		"scores_value":         80,
	})
	if first.StatusCode != fiber.StatusOK {
		t.Fatalf("upsert pertama: %d", first.StatusCode)
	}

	second := f.post(t, "/scores", fiber.Map{
		"scores_assessment_id": f.assessment.AssessmentsID,
		"scores_student_id":    f.student,
		"scores_value":         95,
	})
	if second.StatusCode != fiber.StatusOK {
		t.Fatalf("upsert kedua: %d", second.StatusCode)
	}

	var rows []model.ScoreModel
	if err := f.db.Find(&rows).Error; err != nil {
		t.Fatalf("load scores: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("baris nilai = %d, want 1", len(rows))
	}
	if rows[0].ScoresValue != 95 {
		t.Errorf("nilai = %v, want 95 (update di tempat)", rows[0].ScoresValue)
	}
}

func TestUpsertScoreRejectsOutOfRange(t *testing.T) {
	f := newFixture(t)

	for _, v := range []float64{-1, 101} {
		resp := f.post(t, "/scores", fiber.Map{
			"scores_assessment_id": f.assessment.AssessmentsID,
			"scores_student_id":    f.student,
			"scores_value":         v,
		})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("nilai %v: status %d, want 400", v, resp.StatusCode)
		}
	}
}

func TestUpsertScoreRequiresEnrollment(t *testing.T) {
	f := newFixture(t)

	outsider := uuid.New()
	resp := f.post(t, "/scores", fiber.Map{
		"scores_assessment_id": f.assessment.AssessmentsID,
		"scores_student_id":    outsider,
		"scores_value":         70,
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("siswa luar kelas: status %d, want 400", resp.StatusCode)
	}

	var cnt int64
	if err := f.db.Model(&model.ScoreModel{}).Count(&cnt).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 0 {
		t.Errorf("nilai tersimpan = %d, want 0", cnt)
	}
}

func TestBulkUpsertScoreItemizesFailures(t *testing.T) {
	f := newFixture(t)

	resp := f.post(t, "/scores/bulk", fiber.Map{
		"entries": []fiber.Map{
			{
				"scores_assessment_id": f.assessment.AssessmentsID,
				"scores_student_id":    f.student,
				"scores_value":         88,
			},
			{
				// tidak terdaftar di kelas
				"scores_assessment_id": f.assessment.AssessmentsID,
				"scores_student_id":    uuid.New(),
				"scores_value":         90,
			},
		},
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("bulk: %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Processed []model.ScoreModel `json:"processed"`
			Errors    []string           `json:"errors"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Processed) != 1 || len(body.Data.Errors) != 1 {
		t.Errorf("processed=%d errors=%d, want 1/1", len(body.Data.Processed), len(body.Data.Errors))
	}
}
