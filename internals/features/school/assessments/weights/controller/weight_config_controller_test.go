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
	"siakadku_backend/internals/features/school/assessments/weights/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&teachingModel.TeachingModel{}, &model.WeightConfigModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := NewWeightConfigController(db)
	app := fiber.New()
	app.Post("/weight-configs", ctl.Create)
	app.Post("/weight-configs/bulk", ctl.BulkUpsert)
	return app, db
}

func seedTeaching(t *testing.T, db *gorm.DB) teachingModel.TeachingModel {
	t.Helper()
	teaching := teachingModel.TeachingModel{
		TeachingsTeacherID:  uuid.New(),
		TeachingsSubjectID:  uuid.New(),
		TeachingsClassID:    uuid.New(),
		TeachingsSemesterID: uuid.New(),
	}
	if err := db.Create(&teaching).Error; err != nil {
		t.Fatalf("seed teaching: %v", err)
	}
	return teaching
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestCreateWeightsSumMustBe100(t *testing.T) {
	app, db := newTestApp(t)
	teaching := seedTeaching(t, db)

	// jumlah 99 → ditolak
	resp := postJSON(t, app, "/weight-configs", fiber.Map{
		"weight_configs_teaching_id": teaching.TeachingsID,
		"weight_configs_daily":       33,
		"weight_configs_midterm":     33,
		"weight_configs_final":       33,
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("sum 99: status %d, want 400", resp.StatusCode)
	}

	// jumlah 101 → ditolak
	resp = postJSON(t, app, "/weight-configs", fiber.Map{
		"weight_configs_teaching_id": teaching.TeachingsID,
		"weight_configs_daily":       34,
		"weight_configs_midterm":     34,
		"weight_configs_final":       33,
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("sum 101: status %d, want 400", resp.StatusCode)
	}

	// tepat 100 → diterima
	resp = postJSON(t, app, "/weight-configs", fiber.Map{
		"weight_configs_teaching_id": teaching.TeachingsID,
		"weight_configs_daily":       40,
		"weight_configs_midterm":     30,
		"weight_configs_final":       30,
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Errorf("sum 100: status %d, want 201", resp.StatusCode)
	}
}

func TestCreateWeightsDuplicateTeaching(t *testing.T) {
	app, db := newTestApp(t)
	teaching := seedTeaching(t, db)

	payload := fiber.Map{
		"weight_configs_teaching_id": teaching.TeachingsID,
		"weight_configs_daily":       40,
		"weight_configs_midterm":     30,
		"weight_configs_final":       30,
	}
	if resp := postJSON(t, app, "/weight-configs", payload); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create pertama: %d", resp.StatusCode)
	}
	if resp := postJSON(t, app, "/weight-configs", payload); resp.StatusCode != fiber.StatusConflict {
		t.Errorf("duplikat: status %d, want 409", resp.StatusCode)
	}
}

func TestBulkUpsertPartialFailure(t *testing.T) {
	app, db := newTestApp(t)
	good := seedTeaching(t, db)

	resp := postJSON(t, app, "/weight-configs/bulk", fiber.Map{
		"entries": []fiber.Map{
			{
				"weight_configs_teaching_id": good.TeachingsID,
				"weight_configs_daily":       50,
				"weight_configs_midterm":     25,
				"weight_configs_final":       25,
			},
			{
				// jumlah salah
				"weight_configs_teaching_id": good.TeachingsID,
				"weight_configs_daily":       10,
				"weight_configs_midterm":     10,
				"weight_configs_final":       10,
			},
			{
				// penugasan tidak ada
				"weight_configs_teaching_id": uuid.New(),
				"weight_configs_daily":       40,
				"weight_configs_midterm":     30,
				"weight_configs_final":       30,
			},
		},
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("bulk: status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			Processed []model.WeightConfigModel `json:"processed"`
			Errors    []string                  `json:"errors"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Processed) != 1 {
		t.Errorf("processed = %d, want 1", len(body.Data.Processed))
	}
	if len(body.Data.Errors) != 2 {
		t.Errorf("errors = %d, want 2", len(body.Data.Errors))
	}

	// entri yang gagal tidak boleh membatalkan entri sukses
	var cnt int64
	if err := db.Model(&model.WeightConfigModel{}).Count(&cnt).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if cnt != 1 {
		t.Errorf("baris tersimpan = %d, want 1", cnt)
	}
}
