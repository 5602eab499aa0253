package controller

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/semesters/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.SemesterModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := NewSemesterController(db)
	app := fiber.New()
	app.Put("/semesters/:id", ctl.Update)
	app.Put("/semesters/:id/activate", ctl.Activate)
	return app, db
}

func seedSemester(t *testing.T, db *gorm.DB, yearID uuid.UUID, name string) model.SemesterModel {
	t.Helper()
	sem := model.SemesterModel{
		SemestersAcademicYearID: yearID,
		SemestersName:           name,
		SemestersStatus:         constants.StatusNonaktif,
	}
	if err := db.Create(&sem).Error; err != nil {
		t.Fatalf("seed semester: %v", err)
	}
	return sem
}

func activate(t *testing.T, app *fiber.App, id uuid.UUID) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPut, "/semesters/"+id.String()+"/activate", nil), -1)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	return resp.StatusCode
}

func TestActivateSemesterExclusivePerYear(t *testing.T) {
	app, db := newTestApp(t)

	year := uuid.New()
	ganjil := seedSemester(t, db, year, constants.SemesterGanjil)
	genap := seedSemester(t, db, year, constants.SemesterGenap)

	if code := activate(t, app, ganjil.SemestersID); code != fiber.StatusOK {
		t.Fatalf("activate ganjil: %d", code)
	}
	if code := activate(t, app, genap.SemestersID); code != fiber.StatusOK {
		t.Fatalf("activate genap: %d", code)
	}

	var refreshed model.SemesterModel
	if err := db.First(&refreshed, "semesters_id = ?", ganjil.SemestersID).Error; err != nil {
		t.Fatalf("reload ganjil: %v", err)
	}
	if refreshed.SemestersStatus != constants.StatusNonaktif {
		t.Errorf("ganjil setelah aktivasi genap = %q, want Nonaktif", refreshed.SemestersStatus)
	}

	var active int64
	if err := db.Model(&model.SemesterModel{}).
		Where("semesters_academic_year_id = ? AND semesters_status = ?", year, constants.StatusAktif).
		Count(&active).Error; err != nil {
		t.Fatalf("count aktif: %v", err)
	}
	if active != 1 {
		t.Errorf("semester aktif = %d, want 1", active)
	}
}

func TestActivateSemesterLeavesOtherYearsAlone(t *testing.T) {
	app, db := newTestApp(t)

	yearA := uuid.New()
	yearB := uuid.New()
	semA := seedSemester(t, db, yearA, constants.SemesterGanjil)
	semB := seedSemester(t, db, yearB, constants.SemesterGanjil)

	if code := activate(t, app, semA.SemestersID); code != fiber.StatusOK {
		t.Fatalf("activate A: %d", code)
	}
	if code := activate(t, app, semB.SemestersID); code != fiber.StatusOK {
		t.Fatalf("activate B: %d", code)
	}

	var refreshed model.SemesterModel
	if err := db.First(&refreshed, "semesters_id = ?", semA.SemestersID).Error; err != nil {
		t.Fatalf("reload A: %v", err)
	}
	if refreshed.SemestersStatus != constants.StatusAktif {
		t.Errorf("aktivasi di tahun lain menonaktifkan semester tahun A: %q", refreshed.SemestersStatus)
	}
}

func TestUpdateCannotFlipSemesterStatus(t *testing.T) {
	app, db := newTestApp(t)

	year := uuid.New()
	ganjil := seedSemester(t, db, year, constants.SemesterGanjil)
	genap := seedSemester(t, db, year, constants.SemesterGenap)

	if code := activate(t, app, ganjil.SemestersID); code != fiber.StatusOK {
		t.Fatalf("activate ganjil: %d", code)
	}

	// status hanya lewat activate; PUT biasa ditolak dan tidak
	// boleh menghasilkan dua semester Aktif sekaligus
	raw := []byte(`{"semesters_status":"Aktif"}`)
	req := httptest.NewRequest(fiber.MethodPut, "/semesters/"+genap.SemestersID.String(), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("update genap: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("update status langsung: %d, want 400", resp.StatusCode)
	}

	var active int64
	if err := db.Model(&model.SemesterModel{}).
		Where("semesters_academic_year_id = ? AND semesters_status = ?", year, constants.StatusAktif).
		Count(&active).Error; err != nil {
		t.Fatalf("count aktif: %v", err)
	}
	if active != 1 {
		t.Errorf("semester aktif setelah PUT langsung = %d, want 1", active)
	}
}

func TestActivateUnknownSemester(t *testing.T) {
	app, _ := newTestApp(t)
	if code := activate(t, app, uuid.New()); code != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}
