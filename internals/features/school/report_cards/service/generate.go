// file: internals/features/school/report_cards/service/generate.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"siakadku_backend/internals/configs"
	"siakadku_backend/internals/constants"
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

var (
	ErrAlreadyGenerated = errors.New("rapor untuk siswa dan semester ini sudah ada")
	ErrNotEnrolled      = errors.New("siswa tidak terdaftar pada semester ini")
)

// ErrMissingWeight: penugasan tanpa konfigurasi bobot menghentikan
// generate, supaya rapor tidak terbit dengan mapel bolong.
type ErrMissingWeight struct{ SubjectName string }

func (e *ErrMissingWeight) Error() string {
	return fmt.Sprintf("konfigurasi bobot belum diatur untuk mapel %s", e.SubjectName)
}

// Generator menghitung rapor dari nilai mentah.
type Generator struct {
	DB    *gorm.DB
	Scale configs.GradeScale
}

func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{DB: db, Scale: configs.LoadGradeScale()}
}

// Predicate memetakan nilai akhir ke huruf lewat ambang skala.
func (g *Generator) Predicate(final int) string {
	switch {
	case final >= g.Scale.MinA:
		return "A"
	case final >= g.Scale.MinB:
		return "B"
	case final >= g.Scale.MinC:
		return "C"
	default:
		return "D"
	}
}

// RoundHalfUp membulatkan ke bilangan bulat terdekat, .5 naik.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FinalGrade: rata-rata per jenis penilaian dikali bobotnya, dibagi
// 100. Jenis tanpa nilai menyumbang 0.
func FinalGrade(meanDaily, meanMidterm, meanFinal float64, w weightModel.WeightConfigModel) int {
	weighted := meanDaily*float64(w.WeightConfigsDaily) +
		meanMidterm*float64(w.WeightConfigsMidterm) +
		meanFinal*float64(w.WeightConfigsFinal)
	return RoundHalfUp(weighted / 100)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Generate membangun rapor lengkap satu siswa untuk satu semester:
// satu nilai akhir per mapel dari nilai mentah terbobot, ringkasan
// kehadiran, dan ringkasan ekstrakurikuler. Panggilan kedua untuk
// (siswa, semester) yang sama ditolak.
func (g *Generator) Generate(studentID, semesterID uuid.UUID) (*reportModel.ReportCardModel, []reportModel.ReportCardGradeModel, error) {
	var cnt int64
	if err := g.DB.Model(&reportModel.ReportCardModel{}).
		Where("report_cards_student_id = ? AND report_cards_semester_id = ?", studentID, semesterID).
		Count(&cnt).Error; err != nil {
		return nil, nil, err
	}
	if cnt > 0 {
		return nil, nil, ErrAlreadyGenerated
	}

	var enrollment enrollmentModel.EnrollmentModel
	err := g.DB.First(&enrollment,
		"enrollments_student_id = ? AND enrollments_semester_id = ?", studentID, semesterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotEnrolled
		}
		return nil, nil, err
	}

	var teachings []teachingModel.TeachingModel
	if err := g.DB.
		Where("teachings_class_id = ? AND teachings_semester_id = ?",
			enrollment.EnrollmentsClassID, semesterID).
		Find(&teachings).Error; err != nil {
		return nil, nil, err
	}

	grades := make([]reportModel.ReportCardGradeModel, 0, len(teachings))
	for _, teaching := range teachings {
		grade, err := g.subjectGrade(teaching, studentID)
		if err != nil {
			return nil, nil, err
		}
		grades = append(grades, grade)
	}

	attendanceJSON, err := g.attendanceSummary(studentID, enrollment.EnrollmentsClassID)
	if err != nil {
		return nil, nil, err
	}
	ekskulJSON, err := g.extracurricularSummary(studentID, semesterID)
	if err != nil {
		return nil, nil, err
	}

	card := reportModel.ReportCardModel{
		ReportCardsStudentID:              studentID,
		ReportCardsSemesterID:             semesterID,
		ReportCardsStatus:                 constants.ReportDraft,
		ReportCardsAttendanceSummary:      attendanceJSON,
		ReportCardsExtracurricularSummary: ekskulJSON,
	}

	txErr := g.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&card).Error; err != nil {
			return err
		}
		for i := range grades {
			grades[i].ReportCardGradesReportCardID = card.ReportCardsID
			if err := tx.Create(&grades[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	return &card, grades, nil
}

// subjectGrade menghitung nilai akhir satu mapel: partisi nilai siswa
// per jenis penilaian, rata-rata per jenis, jumlah terbobot /100,
// bulatkan, lalu petakan ke predikat.
func (g *Generator) subjectGrade(teaching teachingModel.TeachingModel, studentID uuid.UUID) (reportModel.ReportCardGradeModel, error) {
	var grade reportModel.ReportCardGradeModel

	var weights weightModel.WeightConfigModel
	err := g.DB.First(&weights, "weight_configs_teaching_id = ?", teaching.TeachingsID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			var subject subjectModel.SubjectModel
			if err := g.DB.First(&subject, "subjects_id = ?", teaching.TeachingsSubjectID).Error; err == nil {
				return grade, &ErrMissingWeight{SubjectName: subject.SubjectsName}
			}
			return grade, &ErrMissingWeight{SubjectName: teaching.TeachingsSubjectID.String()}
		}
		return grade, err
	}

	var assessments []assessmentModel.AssessmentModel
	if err := g.DB.
		Where("assessments_teaching_id = ?", teaching.TeachingsID).
		Find(&assessments).Error; err != nil {
		return grade, err
	}

	byType := map[string][]float64{}
	for _, assessment := range assessments {
		var score scoreModel.ScoreModel
		err := g.DB.First(&score,
			"scores_assessment_id = ? AND scores_student_id = ?",
			assessment.AssessmentsID, studentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return grade, err
		}
		byType[assessment.AssessmentsType] = append(byType[assessment.AssessmentsType], score.ScoresValue)
	}

	final := FinalGrade(
		mean(byType[constants.AssessmentHarian]),
		mean(byType[constants.AssessmentPTS]),
		mean(byType[constants.AssessmentPAS]),
		weights,
	)
	predicate := g.Predicate(final)

	var subject subjectModel.SubjectModel
	if err := g.DB.First(&subject, "subjects_id = ?", teaching.TeachingsSubjectID).Error; err != nil {
		return grade, err
	}

	grade = reportModel.ReportCardGradeModel{
		ReportCardGradesSubjectID:   teaching.TeachingsSubjectID,
		ReportCardGradesFinal:       final,
		ReportCardGradesPredicate:   predicate,
		ReportCardGradesDescription: fmt.Sprintf("Mencapai nilai %d (%s) pada mata pelajaran %s", final, predicate, subject.SubjectsName),
	}
	return grade, nil
}

// attendanceSummary meringkas kehadiran siswa pada kelas semester ini.
func (g *Generator) attendanceSummary(studentID, classID uuid.UUID) (datatypes.JSON, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := g.DB.Model(&attendanceModel.AttendanceModel{}).
		Select("attendances_status AS status, COUNT(*) AS count").
		Where("attendances_student_id = ? AND attendances_class_id = ?", studentID, classID).
		Group("attendances_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := make(map[string]int64, len(constants.ValidAttendanceStatuses))
	for _, s := range constants.ValidAttendanceStatuses {
		summary[s] = 0
	}
	for _, r := range rows {
		summary[r.Status] = r.Count
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (g *Generator) extracurricularSummary(studentID, semesterID uuid.UUID) (datatypes.JSON, error) {
	var gradeRows []ekskulModel.ExtracurricularGradeModel
	if err := g.DB.
		Where("extracurricular_grades_student_id = ? AND extracurricular_grades_semester_id = ?",
			studentID, semesterID).
		Find(&gradeRows).Error; err != nil {
		return nil, err
	}

	type entry struct {
		Name      string `json:"name"`
		Predicate string `json:"predicate"`
		Note      string `json:"note"`
	}
	entries := make([]entry, 0, len(gradeRows))
	for _, gr := range gradeRows {
		var item ekskulModel.ExtracurricularModel
		if err := g.DB.First(&item, "extracurriculars_id = ?", gr.ExtracurricularGradesItemID).Error; err != nil {
			return nil, err
		}
		entries = append(entries, entry{
			Name:      item.ExtracurricularsName,
			Predicate: gr.ExtracurricularGradesPredicate,
			Note:      gr.ExtracurricularGradesNote,
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
