package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

func classify(t *testing.T, err error, fallback string) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return DatabaseError(c, err, fallback)
	})

	resp, reqErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil), -1)
	if reqErr != nil {
		t.Fatalf("request: %v", reqErr)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp.StatusCode, body.Message
}

func TestDatabaseErrorUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_report_cards_student_semester"}

	code, msg := classify(t, dup, "Rapor untuk siswa dan semester ini sudah ada")
	if code != fiber.StatusConflict {
		t.Errorf("status = %d, want 409", code)
	}
	if msg != "Rapor untuk siswa dan semester ini sudah ada" {
		t.Errorf("message = %q", msg)
	}

	// tanpa fallback pun pesan tidak boleh kosong
	code, msg = classify(t, dup, "")
	if code != fiber.StatusConflict {
		t.Errorf("status tanpa fallback = %d, want 409", code)
	}
	if msg == "" {
		t.Error("pelanggaran unique tanpa fallback menghasilkan pesan kosong")
	}
}

func TestDatabaseErrorForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "fk_teachings_teacher"}

	code, msg := classify(t, fk, "")
	if code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", code)
	}
	if msg != "Guru tidak ditemukan" {
		t.Errorf("message = %q, want pesan per relasi", msg)
	}

	// constraint tak terdaftar tetap dapat kalimat generik
	unknown := &pgconn.PgError{Code: "23503", ConstraintName: "fk_belum_terdaftar"}
	code, msg = classify(t, unknown, "")
	if code != fiber.StatusBadRequest {
		t.Errorf("status constraint asing = %d, want 400", code)
	}
	if msg == "" {
		t.Error("pelanggaran FK asing menghasilkan pesan kosong")
	}
}
