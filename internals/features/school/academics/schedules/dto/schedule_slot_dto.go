package dto

import (
	"github.com/google/uuid"

	"siakadku_backend/internals/features/school/academics/schedules/model"
	"siakadku_backend/internals/helpers/dbtime"
)

type ScheduleSlotCreateDTO struct {
	ScheduleSlotsClassID    uuid.UUID `json:"schedule_slots_class_id"    validate:"required"`
	ScheduleSlotsSubjectID  uuid.UUID `json:"schedule_slots_subject_id"  validate:"required"`
	ScheduleSlotsTeacherID  uuid.UUID `json:"schedule_slots_teacher_id"  validate:"required"`
	ScheduleSlotsSemesterID uuid.UUID `json:"schedule_slots_semester_id" validate:"required"`

	ScheduleSlotsDay       string     `json:"schedule_slots_day"        validate:"required,oneof=Senin Selasa Rabu Kamis Jumat Sabtu"`
	ScheduleSlotsStartTime dbtime.Tod `json:"schedule_slots_start_time" validate:"required"`
	ScheduleSlotsEndTime   dbtime.Tod `json:"schedule_slots_end_time"   validate:"required"`
}

type ScheduleSlotUpdateDTO struct {
	ScheduleSlotsClassID    *uuid.UUID `json:"schedule_slots_class_id,omitempty"`
	ScheduleSlotsSubjectID  *uuid.UUID `json:"schedule_slots_subject_id,omitempty"`
	ScheduleSlotsTeacherID  *uuid.UUID `json:"schedule_slots_teacher_id,omitempty"`
	ScheduleSlotsSemesterID *uuid.UUID `json:"schedule_slots_semester_id,omitempty"`

	ScheduleSlotsDay       *string     `json:"schedule_slots_day,omitempty" validate:"omitempty,oneof=Senin Selasa Rabu Kamis Jumat Sabtu"`
	ScheduleSlotsStartTime *dbtime.Tod `json:"schedule_slots_start_time,omitempty"`
	ScheduleSlotsEndTime   *dbtime.Tod `json:"schedule_slots_end_time,omitempty"`
}

func (p *ScheduleSlotCreateDTO) ToModel() model.ScheduleSlotModel {
	return model.ScheduleSlotModel{
		ScheduleSlotsClassID:    p.ScheduleSlotsClassID,
		ScheduleSlotsSubjectID:  p.ScheduleSlotsSubjectID,
		ScheduleSlotsTeacherID:  p.ScheduleSlotsTeacherID,
		ScheduleSlotsSemesterID: p.ScheduleSlotsSemesterID,
		ScheduleSlotsDay:        p.ScheduleSlotsDay,
		ScheduleSlotsStartTime:  p.ScheduleSlotsStartTime,
		ScheduleSlotsEndTime:    p.ScheduleSlotsEndTime,
	}
}

func (p *ScheduleSlotUpdateDTO) ApplyUpdates(m *model.ScheduleSlotModel) {
	if p.ScheduleSlotsClassID != nil {
		m.ScheduleSlotsClassID = *p.ScheduleSlotsClassID
	}
	if p.ScheduleSlotsSubjectID != nil {
		m.ScheduleSlotsSubjectID = *p.ScheduleSlotsSubjectID
	}
	if p.ScheduleSlotsTeacherID != nil {
		m.ScheduleSlotsTeacherID = *p.ScheduleSlotsTeacherID
	}
	if p.ScheduleSlotsSemesterID != nil {
		m.ScheduleSlotsSemesterID = *p.ScheduleSlotsSemesterID
	}
	if p.ScheduleSlotsDay != nil {
		m.ScheduleSlotsDay = *p.ScheduleSlotsDay
	}
	if p.ScheduleSlotsStartTime != nil {
		m.ScheduleSlotsStartTime = *p.ScheduleSlotsStartTime
	}
	if p.ScheduleSlotsEndTime != nil {
		m.ScheduleSlotsEndTime = *p.ScheduleSlotsEndTime
	}
}
