package dto

import (
	"github.com/google/uuid"
)

type AttendanceUpsertDTO struct {
	AttendancesStudentID uuid.UUID `json:"attendances_student_id" validate:"required"`
	AttendancesClassID   uuid.UUID `json:"attendances_class_id"   validate:"required"`
	AttendancesDate      string    `json:"attendances_date"       validate:"required,datetime=2006-01-02"`
	AttendancesStatus    string    `json:"attendances_status"     validate:"required,oneof=Hadir Sakit Izin Alpha"`
}

type BulkAttendanceRequest struct {
	Entries []AttendanceUpsertDTO `json:"entries" validate:"required,min=1,dive"`
}
