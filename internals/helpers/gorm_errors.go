package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"siakadku_backend/internals/configs"
)

// Kode SQLSTATE yang dipetakan ke taksonomi error aplikasi.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Pesan per relasi FK, supaya pelanggaran referential integrity muncul
// sebagai kalimat yang bisa dibaca manusia, bukan error mentah dari DB.
var fkMessages = map[string]string{
	"fk_semesters_academic_year":     "Tahun ajaran tidak ditemukan",
	"fk_teachings_teacher":           "Guru tidak ditemukan",
	"fk_teachings_subject":           "Mata pelajaran tidak ditemukan",
	"fk_teachings_class":             "Kelas tidak ditemukan",
	"fk_teachings_semester":          "Semester tidak ditemukan",
	"fk_schedule_slots_teacher":      "Guru tidak ditemukan",
	"fk_schedule_slots_class":        "Kelas tidak ditemukan",
	"fk_schedule_slots_subject":      "Mata pelajaran tidak ditemukan",
	"fk_schedule_slots_semester":     "Semester tidak ditemukan",
	"fk_scores_assessment":           "Penilaian tidak ditemukan",
	"fk_scores_student":              "Siswa tidak ditemukan",
	"fk_report_card_grades_subject":  "Mata pelajaran tidak ditemukan",
	"fk_report_cards_student":        "Siswa tidak ditemukan",
	"fk_report_cards_semester":       "Semester tidak ditemukan",
	"fk_enrollments_student":         "Siswa tidak ditemukan",
	"fk_enrollments_class":           "Kelas tidak ditemukan",
	"fk_enrollments_semester":        "Semester tidak ditemukan",
	"fk_extracurricular_grades_item": "Ekstrakurikuler tidak ditemukan",
}

// IsUniqueViolation true bila err adalah pelanggaran unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyViolation true bila err adalah pelanggaran FK.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// DatabaseError mengklasifikasikan error dari store sebelum sampai ke caller:
// unique → 409, FK → 400 dengan pesan per relasi, sisanya → 500.
// Detail error internal hanya ikut terkirim di luar production.
func DatabaseError(c *fiber.Ctx, err error, fallback string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if fallback == "" {
				fallback = "Data sudah ada"
			}
			return Conflict(c, fallback)
		case pgForeignKeyViolation:
			if msg, ok := fkMessages[pgErr.ConstraintName]; ok {
				return BadRequest(c, msg)
			}
			return BadRequest(c, "Data masih terkait dengan data lain")
		}
	}

	log.Printf("[ERROR] db: %v", err)
	if configs.IsProduction() {
		return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan server")
	}
	return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan server: "+err.Error())
}
