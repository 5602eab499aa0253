package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siakadku_backend/internals/configs"
	teachingModel "siakadku_backend/internals/features/school/academics/teachings/model"
	assessmentModel "siakadku_backend/internals/features/school/assessments/assessments/model"
	scoreModel "siakadku_backend/internals/features/school/assessments/scores/model"
	weightModel "siakadku_backend/internals/features/school/assessments/weights/model"
	attendanceModel "siakadku_backend/internals/features/school/attendance/model"
	ekskulModel "siakadku_backend/internals/features/school/extracurriculars/model"
	enrollmentModel "siakadku_backend/internals/features/school/masters/enrollments/model"
	subjectModel "siakadku_backend/internals/features/school/masters/subjects/model"
	reportModel "siakadku_backend/internals/features/school/report_cards/model"
)

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{84.0, 84},
		{84.4, 84},
		{84.5, 85},
		{84.6, 85},
		{0.0, 0},
		{99.5, 100},
	}
	for _, tc := range cases {
		if got := RoundHalfUp(tc.in); got != tc.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFinalGradeWeightedSum(t *testing.T) {
	w := weightModel.WeightConfigModel{
		WeightConfigsDaily:   30,
		WeightConfigsMidterm: 30,
		WeightConfigsFinal:   40,
	}

	// 80*0.3 + 80*0.3 + 90*0.4 = 84
	if got := FinalGrade(80, 80, 90, w); got != 84 {
		t.Errorf("FinalGrade = %d, want 84", got)
	}

	// jenis kosong menyumbang 0: 90*0.3 = 27
	if got := FinalGrade(90, 0, 0, w); got != 27 {
		t.Errorf("FinalGrade dengan jenis kosong = %d, want 27", got)
	}
}

func TestPredicateThresholds(t *testing.T) {
	g := Generator{Scale: configs.GradeScale{MinA: 90, MinB: 75, MinC: 60}}

	cases := []struct {
		final int
		want  string
	}{
		{100, "A"}, {90, "A"},
		{89, "B"}, {75, "B"},
		{74, "C"}, {60, "C"},
		{59, "D"}, {0, "D"},
	}
	for _, tc := range cases {
		if got := g.Predicate(tc.final); got != tc.want {
			t.Errorf("Predicate(%d) = %s, want %s", tc.final, got, tc.want)
		}
	}
}

type pipelineFixture struct {
	db       *gorm.DB
	gen      *Generator
	student  uuid.UUID
	semester uuid.UUID
	subject  subjectModel.SubjectModel
	teaching teachingModel.TeachingModel
}

func newPipelineFixture(t *testing.T) pipelineFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&subjectModel.SubjectModel{},
		&teachingModel.TeachingModel{},
		&enrollmentModel.EnrollmentModel{},
		&weightModel.WeightConfigModel{},
		&assessmentModel.AssessmentModel{},
		&scoreModel.ScoreModel{},
		&attendanceModel.AttendanceModel{},
		&ekskulModel.ExtracurricularModel{},
		&ekskulModel.ExtracurricularGradeModel{},
		&reportModel.ReportCardModel{},
		&reportModel.ReportCardGradeModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	subject := subjectModel.SubjectModel{SubjectsCode: "MTK", SubjectsName: "Matematika"}
	if err := db.Create(&subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}

	student := uuid.New()
	semester := uuid.New()
	class := uuid.New()

	teaching := teachingModel.TeachingModel{
		TeachingsTeacherID:  uuid.New(),
		TeachingsSubjectID:  subject.SubjectsID,
		TeachingsClassID:    class,
		TeachingsSemesterID: semester,
	}
	if err := db.Create(&teaching).Error; err != nil {
		t.Fatalf("seed teaching: %v", err)
	}

	enrollment := enrollmentModel.EnrollmentModel{
		EnrollmentsStudentID:  student,
		EnrollmentsSemesterID: semester,
		EnrollmentsClassID:    class,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	gen := &Generator{DB: db, Scale: configs.GradeScale{MinA: 90, MinB: 75, MinC: 60}}
	return pipelineFixture{db: db, gen: gen, student: student, semester: semester, subject: subject, teaching: teaching}
}

func (f pipelineFixture) seedWeights(t *testing.T, daily, midterm, final int) {
	t.Helper()
	w := weightModel.WeightConfigModel{
		WeightConfigsTeachingID: f.teaching.TeachingsID,
		WeightConfigsDaily:      daily,
		WeightConfigsMidterm:    midterm,
		WeightConfigsFinal:      final,
	}
	if err := f.db.Create(&w).Error; err != nil {
		t.Fatalf("seed weights: %v", err)
	}
}

func (f pipelineFixture) seedScore(t *testing.T, name, typ string, value float64) {
	t.Helper()
	assessment := assessmentModel.AssessmentModel{
		AssessmentsTeachingID: f.teaching.TeachingsID,
		AssessmentsName:       name,
		AssessmentsType:       typ,
		AssessmentsCategory:   "Pengetahuan",
	}
	if err := f.db.Create(&assessment).Error; err != nil {
		t.Fatalf("seed assessment %s: %v", name, err)
	}
	score := scoreModel.ScoreModel{
		ScoresAssessmentID: assessment.AssessmentsID,
		ScoresStudentID:    f.student,
		ScoresValue:        value,
	}
	if err := f.db.Create(&score).Error; err != nil {
		t.Fatalf("seed score %s: %v", name, err)
	}
}

func TestGenerateFullPipeline(t *testing.T) {
	f := newPipelineFixture(t)
	f.seedWeights(t, 30, 30, 40)

	// Harian: 75 dan 85 → mean 80; PTS 80; PAS 90
	f.seedScore(t, "UH 1", "Harian", 75)
	f.seedScore(t, "UH 2", "Harian", 85)
	f.seedScore(t, "PTS", "PTS", 80)
	f.seedScore(t, "PAS", "PAS", 90)

	// kehadiran dan ekskul ikut terlipat ke ringkasan
	att := attendanceModel.AttendanceModel{
		AttendancesStudentID: f.student,
		AttendancesClassID:   f.teaching.TeachingsClassID,
		AttendancesDate:      "2025-02-03",
		AttendancesStatus:    "Hadir",
	}
	if err := f.db.Create(&att).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}
	item := ekskulModel.ExtracurricularModel{ExtracurricularsName: "Pramuka"}
	if err := f.db.Create(&item).Error; err != nil {
		t.Fatalf("seed ekskul: %v", err)
	}
	eg := ekskulModel.ExtracurricularGradeModel{
		ExtracurricularGradesStudentID:  f.student,
		ExtracurricularGradesItemID:     item.ExtracurricularsID,
		ExtracurricularGradesSemesterID: f.semester,
		ExtracurricularGradesPredicate:  "A",
		ExtracurricularGradesNote:       "Sangat aktif",
	}
	if err := f.db.Create(&eg).Error; err != nil {
		t.Fatalf("seed nilai ekskul: %v", err)
	}

	card, grades, err := f.gen.Generate(f.student, f.semester)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if card.ReportCardsStatus != "draft" {
		t.Errorf("status = %q, want draft", card.ReportCardsStatus)
	}
	if len(grades) != 1 {
		t.Fatalf("jumlah nilai mapel = %d, want 1", len(grades))
	}

	// 80*0.3 + 80*0.3 + 90*0.4 = 84 → B
	if grades[0].ReportCardGradesFinal != 84 {
		t.Errorf("nilai akhir = %d, want 84", grades[0].ReportCardGradesFinal)
	}
	if grades[0].ReportCardGradesPredicate != "B" {
		t.Errorf("predikat = %s, want B", grades[0].ReportCardGradesPredicate)
	}
	if grades[0].ReportCardGradesSubjectID != f.subject.SubjectsID {
		t.Errorf("subject id tidak cocok")
	}

	var attSummary map[string]int64
	if err := json.Unmarshal(card.ReportCardsAttendanceSummary, &attSummary); err != nil {
		t.Fatalf("decode ringkasan kehadiran: %v", err)
	}
	if attSummary["Hadir"] != 1 {
		t.Errorf("Hadir = %d, want 1", attSummary["Hadir"])
	}

	var ekskulSummary []map[string]string
	if err := json.Unmarshal(card.ReportCardsExtracurricularSummary, &ekskulSummary); err != nil {
		t.Fatalf("decode ringkasan ekskul: %v", err)
	}
	if len(ekskulSummary) != 1 || ekskulSummary[0]["name"] != "Pramuka" {
		t.Errorf("ringkasan ekskul = %+v", ekskulSummary)
	}
}

func TestGenerateEmptyTypeContributesZero(t *testing.T) {
	f := newPipelineFixture(t)
	f.seedWeights(t, 30, 30, 40)

	// hanya Harian yang ada: 90*0.3 = 27 → D
	f.seedScore(t, "UH 1", "Harian", 90)

	_, grades, err := f.gen.Generate(f.student, f.semester)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(grades) != 1 {
		t.Fatalf("jumlah nilai mapel = %d", len(grades))
	}
	if grades[0].ReportCardGradesFinal != 27 {
		t.Errorf("nilai akhir = %d, want 27", grades[0].ReportCardGradesFinal)
	}
	if grades[0].ReportCardGradesPredicate != "D" {
		t.Errorf("predikat = %s, want D", grades[0].ReportCardGradesPredicate)
	}
}

func TestGenerateSecondCallConflicts(t *testing.T) {
	f := newPipelineFixture(t)
	f.seedWeights(t, 30, 30, 40)

	if _, _, err := f.gen.Generate(f.student, f.semester); err != nil {
		t.Fatalf("Generate pertama: %v", err)
	}
	_, _, err := f.gen.Generate(f.student, f.semester)
	if !errors.Is(err, ErrAlreadyGenerated) {
		t.Errorf("Generate kedua: err = %v, want ErrAlreadyGenerated", err)
	}
}

func TestGenerateRequiresEnrollment(t *testing.T) {
	f := newPipelineFixture(t)
	_, _, err := f.gen.Generate(uuid.New(), f.semester)
	if !errors.Is(err, ErrNotEnrolled) {
		t.Errorf("err = %v, want ErrNotEnrolled", err)
	}
}

func TestGenerateRequiresWeightConfig(t *testing.T) {
	f := newPipelineFixture(t)
	// tanpa seedWeights

	_, _, err := f.gen.Generate(f.student, f.semester)
	var missing *ErrMissingWeight
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want ErrMissingWeight", err)
	}
	if missing.SubjectName != "Matematika" {
		t.Errorf("mapel = %q, want Matematika", missing.SubjectName)
	}
}
