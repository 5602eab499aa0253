package constants

// Status aktivasi tahun ajaran & semester (hanya satu yang Aktif).
const (
	StatusAktif    = "Aktif"
	StatusNonaktif = "Nonaktif"
)

// Nama semester; setiap tahun ajaran selalu punya pasangan ini.
const (
	SemesterGanjil = "Ganjil"
	SemesterGenap  = "Genap"
)

// Hari jadwal pelajaran (Minggu tidak dipakai).
var ValidDays = []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

func IsValidDay(day string) bool {
	for _, d := range ValidDays {
		if d == day {
			return true
		}
	}
	return false
}

// Tipe penilaian → kategori bobot nilai akhir.
const (
	AssessmentHarian = "Harian"
	AssessmentPTS    = "PTS"
	AssessmentPAS    = "PAS"
)

var ValidAssessmentTypes = []string{AssessmentHarian, AssessmentPTS, AssessmentPAS}

// Aspek penilaian (kurikulum 2013).
const (
	AspekPengetahuan  = "Pengetahuan"
	AspekKeterampilan = "Keterampilan"
)

var ValidAssessmentCategories = []string{AspekPengetahuan, AspekKeterampilan}

// Predikat huruf rapor.
var ValidPredicates = []string{"A", "B", "C", "D"}

func IsValidPredicate(p string) bool {
	for _, v := range ValidPredicates {
		if v == p {
			return true
		}
	}
	return false
}

// Status kehadiran harian.
const (
	AttendanceHadir = "Hadir"
	AttendanceSakit = "Sakit"
	AttendanceIzin  = "Izin"
	AttendanceAlpha = "Alpha"
)

var ValidAttendanceStatuses = []string{AttendanceHadir, AttendanceSakit, AttendanceIzin, AttendanceAlpha}

// Status dokumen rapor.
const (
	ReportDraft     = "draft"
	ReportPublished = "terbit"
)
