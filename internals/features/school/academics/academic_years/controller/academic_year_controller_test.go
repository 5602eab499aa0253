package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/academic_years/model"
	semesterModel "siakadku_backend/internals/features/school/academics/semesters/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.AcademicYearModel{}, &semesterModel.SemesterModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := NewAcademicYearController(db)
	app := fiber.New()
	app.Post("/academic-years", ctl.Create)
	app.Put("/academic-years/:id", ctl.Update)
	app.Put("/academic-years/:id/activate", ctl.Activate)
	app.Delete("/academic-years/:id", ctl.Delete)
	return app, db
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

func TestCreateYearSpawnsBothSemesters(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, "/academic-years", fiber.Map{
		"academic_years_name": "2024/2025",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var year model.AcademicYearModel
	if err := db.First(&year, "academic_years_name = ?", "2024/2025").Error; err != nil {
		t.Fatalf("tahun ajaran tidak tersimpan: %v", err)
	}
	if year.AcademicYearsStatus != constants.StatusNonaktif {
		t.Errorf("status tahun baru = %q, want Nonaktif", year.AcademicYearsStatus)
	}

	var semesters []semesterModel.SemesterModel
	if err := db.Where("semesters_academic_year_id = ?", year.AcademicYearsID).
		Order("semesters_name ASC").Find(&semesters).Error; err != nil {
		t.Fatalf("load semesters: %v", err)
	}
	if len(semesters) != 2 {
		t.Fatalf("jumlah semester = %d, want 2", len(semesters))
	}
	if semesters[0].SemestersName != constants.SemesterGanjil || semesters[1].SemestersName != constants.SemesterGenap {
		t.Errorf("nama semester = %q,%q", semesters[0].SemestersName, semesters[1].SemestersName)
	}
	for _, s := range semesters {
		if s.SemestersStatus != constants.StatusNonaktif {
			t.Errorf("semester %s lahir %q, want Nonaktif", s.SemestersName, s.SemestersStatus)
		}
	}
}

func TestCreateYearRejectsBadLabel(t *testing.T) {
	app, _ := newTestApp(t)

	for _, label := range []string{"2024", "2024-2025", "2024/2027", "abcd/efgh"} {
		resp := postJSON(t, app, "/academic-years", fiber.Map{"academic_years_name": label})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("label %q: status = %d, want 400", label, resp.StatusCode)
		}
	}
}

func TestCreateYearDuplicateLabel(t *testing.T) {
	app, _ := newTestApp(t)

	first := postJSON(t, app, "/academic-years", fiber.Map{"academic_years_name": "2024/2025"})
	if first.StatusCode != fiber.StatusCreated {
		t.Fatalf("create pertama: %d", first.StatusCode)
	}
	second := postJSON(t, app, "/academic-years", fiber.Map{"academic_years_name": "2024/2025"})
	if second.StatusCode != fiber.StatusConflict {
		t.Errorf("duplikat: status = %d, want 409", second.StatusCode)
	}
}

func TestActivateYearIsExclusive(t *testing.T) {
	app, db := newTestApp(t)

	postJSON(t, app, "/academic-years", fiber.Map{"academic_years_name": "2023/2024"})
	postJSON(t, app, "/academic-years", fiber.Map{"academic_years_name": "2024/2025"})

	var years []model.AcademicYearModel
	if err := db.Order("academic_years_name ASC").Find(&years).Error; err != nil {
		t.Fatalf("load years: %v", err)
	}

	for _, y := range years {
		req := httptest.NewRequest(fiber.MethodPut, "/academic-years/"+y.AcademicYearsID.String()+"/activate", nil)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("activate: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("activate %s: status %d", y.AcademicYearsName, resp.StatusCode)
		}

		var active int64
		if err := db.Model(&model.AcademicYearModel{}).
			Where("academic_years_status = ?", constants.StatusAktif).
			Count(&active).Error; err != nil {
			t.Fatalf("count aktif: %v", err)
		}
		if active != 1 {
			t.Errorf("setelah aktivasi %s: %d tahun Aktif, want 1", y.AcademicYearsName, active)
		}
	}
}

func putJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	raw, _ := json.Marshal(payload)
	req := httptest.NewRequest(fiber.MethodPut, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestUpdateCannotFlipYearStatus(t *testing.T) {
	app, db := newTestApp(t)

	postJSON(t, app, "/academic-years", fiber.Map{"academic_years_name": "2023/2024"})
	postJSON(t, app, "/academic-years", fiber.Map{"academic_years_name": "2024/2025"})

	var years []model.AcademicYearModel
	if err := db.Order("academic_years_name ASC").Find(&years).Error; err != nil {
		t.Fatalf("load years: %v", err)
	}

	// status hanya lewat activate; PUT biasa dengan field status
	// ditolak dan tidak pernah menghasilkan dua tahun Aktif
	for _, y := range years {
		resp := putJSON(t, app, "/academic-years/"+y.AcademicYearsID.String(), fiber.Map{
			"academic_years_status": constants.StatusAktif,
		})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("update status %s: %d, want 400", y.AcademicYearsName, resp.StatusCode)
		}
	}

	var active int64
	if err := db.Model(&model.AcademicYearModel{}).
		Where("academic_years_status = ?", constants.StatusAktif).
		Count(&active).Error; err != nil {
		t.Fatalf("count aktif: %v", err)
	}
	if active != 0 {
		t.Errorf("tahun Aktif setelah PUT langsung = %d, want 0", active)
	}

	// update label biasa tetap jalan
	resp := putJSON(t, app, "/academic-years/"+years[0].AcademicYearsID.String(), fiber.Map{
		"academic_years_name": "2022/2023",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("update label: %d, want 200", resp.StatusCode)
	}
}

func TestDeleteRefusesActiveOrWithSemesters(t *testing.T) {
	app, db := newTestApp(t)

	postJSON(t, app, "/academic-years", fiber.Map{"academic_years_name": "2024/2025"})
	var year model.AcademicYearModel
	if err := db.First(&year, "academic_years_name = ?", "2024/2025").Error; err != nil {
		t.Fatalf("load year: %v", err)
	}

	// masih punya semester → ditolak
	req := httptest.NewRequest(fiber.MethodDelete, "/academic-years/"+year.AcademicYearsID.String(), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("delete dengan semester: status %d, want 409", resp.StatusCode)
	}

	// aktifkan → tetap ditolak walau semester dihapus
	if err := db.Where("semesters_academic_year_id = ?", year.AcademicYearsID).
		Delete(&semesterModel.SemesterModel{}).Error; err != nil {
		t.Fatalf("hapus semester: %v", err)
	}
	if err := db.Model(&year).Update("academic_years_status", constants.StatusAktif).Error; err != nil {
		t.Fatalf("set aktif: %v", err)
	}
	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/academic-years/"+year.AcademicYearsID.String(), nil), -1)
	if err != nil {
		t.Fatalf("delete aktif: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("delete tahun aktif: status %d, want 409", resp.StatusCode)
	}

	// nonaktif tanpa semester → boleh
	if err := db.Model(&year).Update("academic_years_status", constants.StatusNonaktif).Error; err != nil {
		t.Fatalf("set nonaktif: %v", err)
	}
	resp, err = app.Test(httptest.NewRequest(fiber.MethodDelete, "/academic-years/"+year.AcademicYearsID.String(), nil), -1)
	if err != nil {
		t.Fatalf("delete final: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("delete nonaktif tanpa semester: status %d, want 200", resp.StatusCode)
	}
}
