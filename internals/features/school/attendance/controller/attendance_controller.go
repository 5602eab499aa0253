// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/attendance/dto"
	"siakadku_backend/internals/features/school/attendance/model"
	studentModel "siakadku_backend/internals/features/school/masters/students/model"
	helper "siakadku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validator: validator.New()}
}

func (ctl *AttendanceController) upsertOne(entry dto.AttendanceUpsertDTO) (model.AttendanceModel, error) {
	var ent model.AttendanceModel
	err := ctl.DB.First(&ent,
		"attendances_student_id = ? AND attendances_date = ?",
		entry.AttendancesStudentID, entry.AttendancesDate).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ent = model.AttendanceModel{
			AttendancesStudentID: entry.AttendancesStudentID,
			AttendancesClassID:   entry.AttendancesClassID,
			AttendancesDate:      entry.AttendancesDate,
			AttendancesStatus:    entry.AttendancesStatus,
		}
		return ent, ctl.DB.Create(&ent).Error
	case err != nil:
		return ent, err
	default:
		ent.AttendancesClassID = entry.AttendancesClassID
		ent.AttendancesStatus = entry.AttendancesStatus
		return ent, ctl.DB.Save(&ent).Error
	}
}

// Upsert: satu baris per (siswa, tanggal); tulis ulang mengganti status.
func (ctl *AttendanceController) Upsert(c *fiber.Ctx) error {
	var body dto.AttendanceUpsertDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("students_id = ?", body.AttendancesStudentID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Siswa tidak ditemukan")
	}

	ent, err := ctl.upsertOne(body)
	if err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Kehadiran berhasil disimpan", ent)
}

// BulkUpsert untuk absen satu kelas sekali kirim; per entri best-effort.
func (ctl *AttendanceController) BulkUpsert(c *fiber.Ctx) error {
	var body dto.BulkAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	processed := make([]model.AttendanceModel, 0, len(body.Entries))
	var errs []string
	for i, entry := range body.Entries {
		ent, err := ctl.upsertOne(entry)
		if err != nil {
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
			continue
		}
		processed = append(processed, ent)
	}

	return helper.Success(c, "Upsert kehadiran selesai", fiber.Map{
		"processed": processed,
		"errors":    errs,
	})
}

func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 30, 300)

	dbq := ctl.DB.Model(&model.AttendanceModel{})
	for param, col := range map[string]string{
		"student_id": "attendances_student_id",
		"class_id":   "attendances_class_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.BadRequest(c, param+" tidak valid")
			}
			dbq = dbq.Where(col+" = ?", id)
		}
	}
	if v := c.Query("date"); v != "" {
		dbq = dbq.Where("attendances_date = ?", v)
	}
	if v := c.Query("from"); v != "" {
		dbq = dbq.Where("attendances_date >= ?", v)
	}
	if v := c.Query("to"); v != "" {
		dbq = dbq.Where("attendances_date <= ?", v)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.AttendanceModel
	if err := dbq.
		Order("attendances_date ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"attendances": list,
		"pagination":  helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

// RecapByStudent menghitung jumlah per status, opsional dibatasi
// rentang tanggal (?from=&to=).
func (ctl *AttendanceController) RecapByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.BadRequest(c, "studentId tidak valid")
	}

	dbq := ctl.DB.Model(&model.AttendanceModel{}).
		Where("attendances_student_id = ?", studentID)
	if v := c.Query("from"); v != "" {
		dbq = dbq.Where("attendances_date >= ?", v)
	}
	if v := c.Query("to"); v != "" {
		dbq = dbq.Where("attendances_date <= ?", v)
	}

	type row struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var rows []row
	if err := dbq.
		Select("attendances_status AS status, COUNT(*) AS count").
		Group("attendances_status").
		Scan(&rows).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	recap := make(map[string]int64, len(constants.ValidAttendanceStatuses))
	for _, s := range constants.ValidAttendanceStatuses {
		recap[s] = 0
	}
	for _, r := range rows {
		recap[r.Status] = r.Count
	}

	return helper.Success(c, "OK", recap)
}

func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.AttendanceModel
	if err := ctl.DB.First(&ent, "attendances_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Kehadiran tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Kehadiran berhasil dihapus", nil)
}
