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

	subjectModel "siakadku_backend/internals/features/school/masters/subjects/model"
	"siakadku_backend/internals/features/school/report_cards/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&subjectModel.SubjectModel{},
		&model.ReportCardModel{},
		&model.ReportCardGradeModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctl := NewReportCardController(db)
	app := fiber.New()
	app.Put("/report-cards/:id", ctl.Update)
	app.Put("/report-cards/:id/publish", ctl.Publish)
	app.Delete("/report-cards/:id", ctl.Delete)
	app.Post("/report-cards/:id/grades", ctl.UpsertGrade)
	return app, db
}

func seedDraftCard(t *testing.T, db *gorm.DB) model.ReportCardModel {
	t.Helper()
	card := model.ReportCardModel{
		ReportCardsStudentID:  uuid.New(),
		ReportCardsSemesterID: uuid.New(),
		ReportCardsStatus:     "draft",
	}
	if err := db.Create(&card).Error; err != nil {
		t.Fatalf("seed rapor: %v", err)
	}
	return card
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	return resp
}

func TestPublishFreezesReportCard(t *testing.T) {
	app, db := newTestApp(t)
	card := seedDraftCard(t, db)

	subject := subjectModel.SubjectModel{SubjectsCode: "IPA", SubjectsName: "IPA"}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	base := "/report-cards/" + card.ReportCardsID.String()

	// sebelum terbit masih bisa diubah
	resp := doJSON(t, app, fiber.MethodPut, base, fiber.Map{
		"report_cards_homeroom_note": "Pertahankan semangat belajar",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("update draft: status %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodPut, base+"/publish", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("publish: status %d, want 200", resp.StatusCode)
	}
	var stored model.ReportCardModel
	if err := db.First(&stored, "report_cards_id = ?", card.ReportCardsID).Error; err != nil {
		t.Fatalf("reload rapor: %v", err)
	}
	if stored.ReportCardsStatus != "terbit" {
		t.Fatalf("status = %q, want terbit", stored.ReportCardsStatus)
	}

	// setelah terbit semua mutasi ditolak 409
	resp = doJSON(t, app, fiber.MethodPut, base, fiber.Map{
		"report_cards_homeroom_note": "coba ubah",
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("update setelah terbit: status %d, want 409", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodPost, base+"/grades", fiber.Map{
		"report_card_grades_subject_id": subject.SubjectsID,
		"report_card_grades_final":      80,
		"report_card_grades_predicate":  "B",
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("upsert nilai setelah terbit: status %d, want 409", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodDelete, base, nil)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("delete setelah terbit: status %d, want 409", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodPut, base+"/publish", nil)
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("publish ulang: status %d, want 409", resp.StatusCode)
	}

	// catatan dari update pertama tidak tertimpa
	if err := db.First(&stored, "report_cards_id = ?", card.ReportCardsID).Error; err != nil {
		t.Fatalf("reload rapor: %v", err)
	}
	if stored.ReportCardsHomeroomNote != "Pertahankan semangat belajar" {
		t.Errorf("catatan wali kelas = %q", stored.ReportCardsHomeroomNote)
	}
}

func TestUpdateUnknownReportCardNotFound(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, fiber.MethodPut, "/report-cards/"+uuid.NewString(), fiber.Map{
		"report_cards_homeroom_note": "x",
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status %d, want 404", resp.StatusCode)
	}
}
