// file: internals/features/school/report_cards/model/report_card_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReportCardModel: satu rapor per (siswa, semester). Setelah status
// "terbit" dokumen tidak boleh diubah lagi.
type ReportCardModel struct {
	ReportCardsID uuid.UUID `json:"report_cards_id" gorm:"column:report_cards_id;type:uuid;primaryKey"`

	ReportCardsStudentID  uuid.UUID `json:"report_cards_student_id"  gorm:"column:report_cards_student_id;type:uuid;not null;uniqueIndex:uq_report_cards_student_semester"`
	ReportCardsSemesterID uuid.UUID `json:"report_cards_semester_id" gorm:"column:report_cards_semester_id;type:uuid;not null;uniqueIndex:uq_report_cards_student_semester"`

	ReportCardsStatus            string `json:"report_cards_status"             gorm:"column:report_cards_status;type:varchar(10);not null;default:'draft'"` // draft | terbit
	ReportCardsHomeroomNote      string `json:"report_cards_homeroom_note"      gorm:"column:report_cards_homeroom_note;type:text"`
	ReportCardsAttitudeSpiritual string `json:"report_cards_attitude_spiritual" gorm:"column:report_cards_attitude_spiritual;type:text"`
	ReportCardsAttitudeSocial    string `json:"report_cards_attitude_social"    gorm:"column:report_cards_attitude_social;type:text"`

	ReportCardsAttendanceSummary      datatypes.JSON `json:"report_cards_attendance_summary"      gorm:"column:report_cards_attendance_summary;type:jsonb"`
	ReportCardsExtracurricularSummary datatypes.JSON `json:"report_cards_extracurricular_summary" gorm:"column:report_cards_extracurricular_summary;type:jsonb"`

	ReportCardsCreatedAt time.Time `json:"report_cards_created_at" gorm:"column:report_cards_created_at;autoCreateTime"`
	ReportCardsUpdatedAt time.Time `json:"report_cards_updated_at" gorm:"column:report_cards_updated_at;autoUpdateTime"`
}

func (ReportCardModel) TableName() string { return "report_cards" }

func (m *ReportCardModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReportCardsID == uuid.Nil {
		m.ReportCardsID = uuid.New()
	}
	if m.ReportCardsStatus == "" {
		m.ReportCardsStatus = "draft"
	}
	return nil
}

// ReportCardGradeModel: nilai akhir satu mapel di satu rapor.
type ReportCardGradeModel struct {
	ReportCardGradesID uuid.UUID `json:"report_card_grades_id" gorm:"column:report_card_grades_id;type:uuid;primaryKey"`

	ReportCardGradesReportCardID uuid.UUID `json:"report_card_grades_report_card_id" gorm:"column:report_card_grades_report_card_id;type:uuid;not null;uniqueIndex:uq_report_card_grades_subject"`
	ReportCardGradesSubjectID    uuid.UUID `json:"report_card_grades_subject_id"     gorm:"column:report_card_grades_subject_id;type:uuid;not null;uniqueIndex:uq_report_card_grades_subject"`

	ReportCardGradesFinal       int    `json:"report_card_grades_final"       gorm:"column:report_card_grades_final;not null"`                    // 0..100
	ReportCardGradesPredicate   string `json:"report_card_grades_predicate"   gorm:"column:report_card_grades_predicate;type:varchar(1);not null"` // A..D
	ReportCardGradesDescription string `json:"report_card_grades_description" gorm:"column:report_card_grades_description;type:text"`

	ReportCardGradesCreatedAt time.Time `json:"report_card_grades_created_at" gorm:"column:report_card_grades_created_at;autoCreateTime"`
	ReportCardGradesUpdatedAt time.Time `json:"report_card_grades_updated_at" gorm:"column:report_card_grades_updated_at;autoUpdateTime"`
}

func (ReportCardGradeModel) TableName() string { return "report_card_grades" }

func (m *ReportCardGradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReportCardGradesID == uuid.Nil {
		m.ReportCardGradesID = uuid.New()
	}
	return nil
}
