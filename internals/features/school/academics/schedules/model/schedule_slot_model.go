// file: internals/features/school/academics/schedules/model/schedule_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakadku_backend/internals/helpers/dbtime"
)

// ScheduleSlotModel: satu slot jadwal mingguan. Kolom waktu disimpan
// sebagai TIME ("HH:MM:SS") sehingga bisa dibandingkan leksikal di SQL.
type ScheduleSlotModel struct {
	ScheduleSlotsID uuid.UUID `json:"schedule_slots_id" gorm:"column:schedule_slots_id;type:uuid;primaryKey"`

	ScheduleSlotsClassID    uuid.UUID `json:"schedule_slots_class_id"    gorm:"column:schedule_slots_class_id;type:uuid;not null;index:idx_schedule_slots_class_axis"`
	ScheduleSlotsSubjectID  uuid.UUID `json:"schedule_slots_subject_id"  gorm:"column:schedule_slots_subject_id;type:uuid;not null"`
	ScheduleSlotsTeacherID  uuid.UUID `json:"schedule_slots_teacher_id"  gorm:"column:schedule_slots_teacher_id;type:uuid;not null;index:idx_schedule_slots_teacher_axis"`
	ScheduleSlotsSemesterID uuid.UUID `json:"schedule_slots_semester_id" gorm:"column:schedule_slots_semester_id;type:uuid;not null;index:idx_schedule_slots_class_axis;index:idx_schedule_slots_teacher_axis"`

	ScheduleSlotsDay       string     `json:"schedule_slots_day"        gorm:"column:schedule_slots_day;type:varchar(10);not null;index:idx_schedule_slots_class_axis;index:idx_schedule_slots_teacher_axis"`
	ScheduleSlotsStartTime dbtime.Tod `json:"schedule_slots_start_time" gorm:"column:schedule_slots_start_time;type:time;not null"`
	ScheduleSlotsEndTime   dbtime.Tod `json:"schedule_slots_end_time"   gorm:"column:schedule_slots_end_time;type:time;not null"`

	ScheduleSlotsCreatedAt time.Time `json:"schedule_slots_created_at" gorm:"column:schedule_slots_created_at;autoCreateTime"`
	ScheduleSlotsUpdatedAt time.Time `json:"schedule_slots_updated_at" gorm:"column:schedule_slots_updated_at;autoUpdateTime"`
}

func (ScheduleSlotModel) TableName() string { return "schedule_slots" }

func (m *ScheduleSlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleSlotsID == uuid.Nil {
		m.ScheduleSlotsID = uuid.New()
	}
	return nil
}

// Overlaps: dua rentang bentrok jika s1 <= e2 dan s2 <= e1.
// Batas inklusif: slot yang bersentuhan di ujung dianggap bentrok.
func (m *ScheduleSlotModel) Overlaps(start, end dbtime.Tod) bool {
	return m.ScheduleSlotsStartTime.BeforeEq(end) && start.BeforeEq(m.ScheduleSlotsEndTime)
}
