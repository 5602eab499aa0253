// file: internals/features/school/academics/schedules/controller/schedule_slot_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/schedules/dto"
	"siakadku_backend/internals/features/school/academics/schedules/model"
	semesterModel "siakadku_backend/internals/features/school/academics/semesters/model"
	classModel "siakadku_backend/internals/features/school/masters/classes/model"
	employeeModel "siakadku_backend/internals/features/school/masters/employees/model"
	subjectModel "siakadku_backend/internals/features/school/masters/subjects/model"
	helper "siakadku_backend/internals/helpers"
)

const (
	msgTeacherBusy = "Guru sudah memiliki jadwal pada jam tersebut"
	msgClassBusy   = "Kelas sudah memiliki jadwal pada jam tersebut"
)

type ScheduleSlotController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScheduleSlotController(db *gorm.DB) *ScheduleSlotController {
	return &ScheduleSlotController{DB: db, Validator: validator.New()}
}

func (ctl *ScheduleSlotController) checkRefs(slot *model.ScheduleSlotModel) (string, error) {
	var cnt int64
	if err := ctl.DB.Model(&classModel.ClassModel{}).
		Where("classes_id = ?", slot.ScheduleSlotsClassID).Count(&cnt).Error; err != nil {
		return "", err
	}
	if cnt == 0 {
		return "Kelas tidak ditemukan", nil
	}
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subjects_id = ?", slot.ScheduleSlotsSubjectID).Count(&cnt).Error; err != nil {
		return "", err
	}
	if cnt == 0 {
		return "Mata pelajaran tidak ditemukan", nil
	}
	if err := ctl.DB.Model(&employeeModel.EmployeeModel{}).
		Where("employees_id = ?", slot.ScheduleSlotsTeacherID).Count(&cnt).Error; err != nil {
		return "", err
	}
	if cnt == 0 {
		return "Guru tidak ditemukan", nil
	}
	if err := ctl.DB.Model(&semesterModel.SemesterModel{}).
		Where("semesters_id = ?", slot.ScheduleSlotsSemesterID).Count(&cnt).Error; err != nil {
		return "", err
	}
	if cnt == 0 {
		return "Semester tidak ditemukan", nil
	}
	return "", nil
}

// conflictOnAxis menghitung slot lain yang bentrok pada satu sumbu
// (guru atau kelas) di hari & semester yang sama. Batas inklusif:
// start <= end_lain AND end >= start_lain.
func conflictOnAxis(tx *gorm.DB, axisColumn string, axisID uuid.UUID, slot *model.ScheduleSlotModel, excludeID *uuid.UUID) (bool, error) {
	q := tx.Model(&model.ScheduleSlotModel{}).
		Where(axisColumn+" = ?", axisID).
		Where("schedule_slots_semester_id = ?", slot.ScheduleSlotsSemesterID).
		Where("schedule_slots_day = ?", slot.ScheduleSlotsDay).
		Where("schedule_slots_start_time <= ? AND schedule_slots_end_time >= ?",
			slot.ScheduleSlotsEndTime, slot.ScheduleSlotsStartTime)
	if excludeID != nil {
		q = q.Where("schedule_slots_id <> ?", *excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// checkBothAxes menjalankan cek bentrok guru lalu kelas; mengembalikan
// pesan sumbu pertama yang bentrok.
func checkBothAxes(tx *gorm.DB, slot *model.ScheduleSlotModel, excludeID *uuid.UUID) (string, error) {
	busy, err := conflictOnAxis(tx, "schedule_slots_teacher_id", slot.ScheduleSlotsTeacherID, slot, excludeID)
	if err != nil {
		return "", err
	}
	if busy {
		return msgTeacherBusy, nil
	}
	busy, err = conflictOnAxis(tx, "schedule_slots_class_id", slot.ScheduleSlotsClassID, slot, excludeID)
	if err != nil {
		return "", err
	}
	if busy {
		return msgClassBusy, nil
	}
	return "", nil
}

// lockAxes menahan advisory lock untuk kedua scope (guru+hari, kelas+hari)
// agar validasi-lalu-insert yang bersamaan terserialisasi.
func lockAxes(tx *gorm.DB, slot *model.ScheduleSlotModel) error {
	teacherKey := helper.LockKey("schedule_teacher",
		slot.ScheduleSlotsTeacherID.String(), slot.ScheduleSlotsSemesterID.String(), slot.ScheduleSlotsDay)
	classKey := helper.LockKey("schedule_class",
		slot.ScheduleSlotsClassID.String(), slot.ScheduleSlotsSemesterID.String(), slot.ScheduleSlotsDay)
	// urutan kunci deterministik untuk menghindari deadlock
	if teacherKey > classKey {
		teacherKey, classKey = classKey, teacherKey
	}
	if err := helper.AdvisoryXactLock(tx, teacherKey); err != nil {
		return err
	}
	return helper.AdvisoryXactLock(tx, classKey)
}

func (ctl *ScheduleSlotController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.ScheduleSlotModel{})
	for param, col := range map[string]string{
		"class_id":    "schedule_slots_class_id",
		"teacher_id":  "schedule_slots_teacher_id",
		"semester_id": "schedule_slots_semester_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.BadRequest(c, param+" tidak valid")
			}
			dbq = dbq.Where(col+" = ?", id)
		}
	}
	if day := c.Query("day"); day != "" {
		if !constants.IsValidDay(day) {
			return helper.BadRequest(c, "Hari tidak valid")
		}
		dbq = dbq.Where("schedule_slots_day = ?", day)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.ScheduleSlotModel
	if err := dbq.
		Order("schedule_slots_day ASC, schedule_slots_start_time ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"schedules":  list,
		"pagination": helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

func (ctl *ScheduleSlotController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.ScheduleSlotModel
	if err := ctl.DB.First(&ent, "schedule_slots_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Jadwal tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", ent)
}

// ByClass mengembalikan jadwal mingguan satu kelas. semester_id wajib.
func (ctl *ScheduleSlotController) ByClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.BadRequest(c, "classId tidak valid")
	}
	semID, err := uuid.Parse(c.Query("semester_id"))
	if err != nil {
		return helper.BadRequest(c, "semester_id wajib diisi")
	}

	var list []model.ScheduleSlotModel
	if err := ctl.DB.
		Where("schedule_slots_class_id = ? AND schedule_slots_semester_id = ?", classID, semID).
		Order("schedule_slots_day ASC, schedule_slots_start_time ASC").
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

// ByTeacher mengembalikan jadwal mingguan satu guru. semester_id wajib.
func (ctl *ScheduleSlotController) ByTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.BadRequest(c, "teacherId tidak valid")
	}
	semID, err := uuid.Parse(c.Query("semester_id"))
	if err != nil {
		return helper.BadRequest(c, "semester_id wajib diisi")
	}

	var list []model.ScheduleSlotModel
	if err := ctl.DB.
		Where("schedule_slots_teacher_id = ? AND schedule_slots_semester_id = ?", teacherID, semID).
		Order("schedule_slots_day ASC, schedule_slots_start_time ASC").
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

// Stats menghitung jumlah slot per hari.
func (ctl *ScheduleSlotController) Stats(c *fiber.Ctx) error {
	type row struct {
		Day   string `json:"day"`
		Count int64  `json:"count"`
	}
	var rows []row
	if err := ctl.DB.Model(&model.ScheduleSlotModel{}).
		Select("schedule_slots_day AS day, COUNT(*) AS count").
		Group("schedule_slots_day").
		Scan(&rows).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	perDay := make(map[string]int64, len(constants.ValidDays))
	for _, d := range constants.ValidDays {
		perDay[d] = 0
	}
	var total int64
	for _, r := range rows {
		perDay[r.Day] = r.Count
		total += r.Count
	}

	return helper.Success(c, "OK", fiber.Map{
		"total":   total,
		"per_day": perDay,
	})
}

// Create memvalidasi field & FK, lalu menjalankan kedua cek sumbu
// (guru, kelas) di dalam transaksi insert dengan advisory lock.
func (ctl *ScheduleSlotController) Create(c *fiber.Ctx) error {
	var body dto.ScheduleSlotCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if !body.ScheduleSlotsStartTime.Before(body.ScheduleSlotsEndTime) {
		return helper.BadRequest(c, "Jam mulai harus sebelum jam selesai")
	}

	ent := body.ToModel()
	if msg, err := ctl.checkRefs(&ent); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if msg != "" {
		return helper.BadRequest(c, msg)
	}

	var conflictMsg string
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockAxes(tx, &ent); err != nil {
			return err
		}
		msg, err := checkBothAxes(tx, &ent, nil)
		if err != nil {
			return err
		}
		if msg != "" {
			conflictMsg = msg
			return gorm.ErrInvalidData // rollback marker
		}
		return tx.Create(&ent).Error
	})
	if txErr != nil {
		if conflictMsg != "" {
			return helper.Conflict(c, conflictMsg)
		}
		return helper.DatabaseError(c, txErr, "Jadwal bentrok dengan jadwal lain")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal berhasil dibuat", ent)
}

// Update menggabungkan nilai akhir (baru jika ada, lama jika tidak)
// lalu mengulang KEDUA cek sumbu dengan mengecualikan slot ini sendiri.
func (ctl *ScheduleSlotController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.ScheduleSlotUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ent model.ScheduleSlotModel
	if err := ctl.DB.First(&ent, "schedule_slots_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Jadwal tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	body.ApplyUpdates(&ent)
	if !ent.ScheduleSlotsStartTime.Before(ent.ScheduleSlotsEndTime) {
		return helper.BadRequest(c, "Jam mulai harus sebelum jam selesai")
	}
	if msg, err := ctl.checkRefs(&ent); err != nil {
		return helper.DatabaseError(c, err, "")
	} else if msg != "" {
		return helper.BadRequest(c, msg)
	}

	var conflictMsg string
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockAxes(tx, &ent); err != nil {
			return err
		}
		msg, err := checkBothAxes(tx, &ent, &id)
		if err != nil {
			return err
		}
		if msg != "" {
			conflictMsg = msg
			return gorm.ErrInvalidData
		}
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		if conflictMsg != "" {
			return helper.Conflict(c, conflictMsg)
		}
		return helper.DatabaseError(c, txErr, "Jadwal bentrok dengan jadwal lain")
	}

	return helper.Success(c, "Jadwal berhasil diupdate", ent)
}

func (ctl *ScheduleSlotController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var ent model.ScheduleSlotModel
	if err := ctl.DB.First(&ent, "schedule_slots_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Jadwal tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Jadwal berhasil dihapus", nil)
}
