package controller

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"siakadku_backend/internals/features/school/academics/schedules/model"
	"siakadku_backend/internals/helpers/dbtime"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.ScheduleSlotModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func seedSlot(t *testing.T, db *gorm.DB, teacherID, classID, semesterID uuid.UUID, day, start, end string) model.ScheduleSlotModel {
	t.Helper()
	slot := model.ScheduleSlotModel{
		ScheduleSlotsClassID:    classID,
		ScheduleSlotsSubjectID:  uuid.New(),
		ScheduleSlotsTeacherID:  teacherID,
		ScheduleSlotsSemesterID: semesterID,
		ScheduleSlotsDay:        day,
		ScheduleSlotsStartTime:  mustTod(t, start),
		ScheduleSlotsEndTime:    mustTod(t, end),
	}
	if err := db.Create(&slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	return slot
}

func TestCheckBothAxesTeacherConflict(t *testing.T) {
	db := openTestDB(t)
	teacher := uuid.New()
	sem := uuid.New()
	seedSlot(t, db, teacher, uuid.New(), sem, "Senin", "07:00", "08:00")

	// guru sama, kelas beda, jam bersentuhan di ujung
	candidate := model.ScheduleSlotModel{
		ScheduleSlotsClassID:    uuid.New(),
		ScheduleSlotsTeacherID:  teacher,
		ScheduleSlotsSemesterID: sem,
		ScheduleSlotsDay:        "Senin",
		ScheduleSlotsStartTime:  mustTod(t, "08:00"),
		ScheduleSlotsEndTime:    mustTod(t, "09:00"),
	}
	msg, err := checkBothAxes(db, &candidate, nil)
	if err != nil {
		t.Fatalf("checkBothAxes: %v", err)
	}
	if msg != msgTeacherBusy {
		t.Errorf("pesan = %q, want %q", msg, msgTeacherBusy)
	}
}

func TestCheckBothAxesClassConflict(t *testing.T) {
	db := openTestDB(t)
	class := uuid.New()
	sem := uuid.New()
	seedSlot(t, db, uuid.New(), class, sem, "Selasa", "09:00", "10:00")

	candidate := model.ScheduleSlotModel{
		ScheduleSlotsClassID:    class,
		ScheduleSlotsTeacherID:  uuid.New(),
		ScheduleSlotsSemesterID: sem,
		ScheduleSlotsDay:        "Selasa",
		ScheduleSlotsStartTime:  mustTod(t, "09:30"),
		ScheduleSlotsEndTime:    mustTod(t, "10:30"),
	}
	msg, err := checkBothAxes(db, &candidate, nil)
	if err != nil {
		t.Fatalf("checkBothAxes: %v", err)
	}
	if msg != msgClassBusy {
		t.Errorf("pesan = %q, want %q", msg, msgClassBusy)
	}
}

func TestCheckBothAxesNoConflictAcrossScopes(t *testing.T) {
	db := openTestDB(t)
	teacher := uuid.New()
	class := uuid.New()
	sem := uuid.New()
	seedSlot(t, db, teacher, class, sem, "Rabu", "07:00", "08:00")

	cases := []struct {
		name string
		slot model.ScheduleSlotModel
	}{
		{
			"hari beda",
			model.ScheduleSlotModel{
				ScheduleSlotsClassID: class, ScheduleSlotsTeacherID: teacher,
				ScheduleSlotsSemesterID: sem, ScheduleSlotsDay: "Kamis",
				ScheduleSlotsStartTime: mustTod(t, "07:00"), ScheduleSlotsEndTime: mustTod(t, "08:00"),
			},
		},
		{
			"semester beda",
			model.ScheduleSlotModel{
				ScheduleSlotsClassID: class, ScheduleSlotsTeacherID: teacher,
				ScheduleSlotsSemesterID: uuid.New(), ScheduleSlotsDay: "Rabu",
				ScheduleSlotsStartTime: mustTod(t, "07:00"), ScheduleSlotsEndTime: mustTod(t, "08:00"),
			},
		},
		{
			"jam lepas",
			model.ScheduleSlotModel{
				ScheduleSlotsClassID: class, ScheduleSlotsTeacherID: teacher,
				ScheduleSlotsSemesterID: sem, ScheduleSlotsDay: "Rabu",
				ScheduleSlotsStartTime: mustTod(t, "08:01"), ScheduleSlotsEndTime: mustTod(t, "09:00"),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot := tc.slot
			msg, err := checkBothAxes(db, &slot, nil)
			if err != nil {
				t.Fatalf("checkBothAxes: %v", err)
			}
			if msg != "" {
				t.Errorf("tidak mengharapkan bentrok, dapat %q", msg)
			}
		})
	}
}

func TestCheckBothAxesExcludesSelf(t *testing.T) {
	db := openTestDB(t)
	teacher := uuid.New()
	class := uuid.New()
	sem := uuid.New()
	existing := seedSlot(t, db, teacher, class, sem, "Jumat", "07:00", "08:00")

	// update yang hanya menggeser jam sedikit tidak boleh bentrok
	// dengan dirinya sendiri
	updated := existing
	updated.ScheduleSlotsEndTime = mustTod(t, "08:30")
	msg, err := checkBothAxes(db, &updated, &existing.ScheduleSlotsID)
	if err != nil {
		t.Fatalf("checkBothAxes: %v", err)
	}
	if msg != "" {
		t.Errorf("slot tidak boleh bentrok dengan dirinya sendiri, dapat %q", msg)
	}
}
