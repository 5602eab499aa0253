package dto

import (
	"github.com/google/uuid"

	"siakadku_backend/internals/features/school/report_cards/model"
)

type ReportCardCreateDTO struct {
	ReportCardsStudentID  uuid.UUID `json:"report_cards_student_id"  validate:"required"`
	ReportCardsSemesterID uuid.UUID `json:"report_cards_semester_id" validate:"required"`
}

type ReportCardUpdateDTO struct {
	ReportCardsHomeroomNote      *string `json:"report_cards_homeroom_note,omitempty"      validate:"omitempty,max=2000"`
	ReportCardsAttitudeSpiritual *string `json:"report_cards_attitude_spiritual,omitempty" validate:"omitempty,max=2000"`
	ReportCardsAttitudeSocial    *string `json:"report_cards_attitude_social,omitempty"    validate:"omitempty,max=2000"`
}

type GenerateRequest struct {
	StudentID  uuid.UUID `json:"student_id"  validate:"required"`
	SemesterID uuid.UUID `json:"semester_id" validate:"required"`
}

type SubjectGradeUpsertDTO struct {
	ReportCardGradesSubjectID   uuid.UUID `json:"report_card_grades_subject_id" validate:"required"`
	ReportCardGradesFinal       int       `json:"report_card_grades_final"       validate:"min=0,max=100"`
	ReportCardGradesPredicate   string    `json:"report_card_grades_predicate"   validate:"required,oneof=A B C D"`
	ReportCardGradesDescription string    `json:"report_card_grades_description" validate:"omitempty,max=2000"`
}

type BulkSubjectGradeRequest struct {
	Entries []SubjectGradeUpsertDTO `json:"entries" validate:"required,min=1,dive"`
}

func (p *ReportCardUpdateDTO) ApplyUpdates(m *model.ReportCardModel) {
	if p.ReportCardsHomeroomNote != nil {
		m.ReportCardsHomeroomNote = *p.ReportCardsHomeroomNote
	}
	if p.ReportCardsAttitudeSpiritual != nil {
		m.ReportCardsAttitudeSpiritual = *p.ReportCardsAttitudeSpiritual
	}
	if p.ReportCardsAttitudeSocial != nil {
		m.ReportCardsAttitudeSocial = *p.ReportCardsAttitudeSocial
	}
}
