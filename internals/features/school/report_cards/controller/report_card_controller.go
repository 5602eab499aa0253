// file: internals/features/school/report_cards/controller/report_card_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	subjectModel "siakadku_backend/internals/features/school/masters/subjects/model"
	"siakadku_backend/internals/features/school/report_cards/dto"
	"siakadku_backend/internals/features/school/report_cards/model"
	"siakadku_backend/internals/features/school/report_cards/service"
	helper "siakadku_backend/internals/helpers"
)

const publishedMessage = "Rapor sudah terbit dan tidak bisa diubah"

type ReportCardController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Generator *service.Generator
}

func NewReportCardController(db *gorm.DB) *ReportCardController {
	return &ReportCardController{
		DB:        db,
		Validator: validator.New(),
		Generator: service.NewGenerator(db),
	}
}

func (ctl *ReportCardController) loadCard(c *fiber.Ctx, id uuid.UUID) (*model.ReportCardModel, error) {
	var ent model.ReportCardModel
	if err := ctl.DB.First(&ent, "report_cards_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NotFound(c, "Rapor tidak ditemukan")
		}
		return nil, helper.DatabaseError(c, err, "")
	}
	return &ent, nil
}

func (ctl *ReportCardController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	dbq := ctl.DB.Model(&model.ReportCardModel{})
	for param, col := range map[string]string{
		"student_id":  "report_cards_student_id",
		"semester_id": "report_cards_semester_id",
	} {
		if v := c.Query(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return helper.BadRequest(c, param+" tidak valid")
			}
			dbq = dbq.Where(col+" = ?", id)
		}
	}
	if status := c.Query("status"); status != "" {
		dbq = dbq.Where("report_cards_status = ?", status)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	var list []model.ReportCardModel
	if err := dbq.
		Order("report_cards_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"report_cards": list,
		"pagination":   helper.BuildPagination(total, paging.Page, paging.PerPage),
	})
}

// GetByID mengembalikan rapor beserta nilai per mapelnya.
func (ctl *ReportCardController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	ent, errResp := ctl.loadCard(c, id)
	if ent == nil {
		return errResp
	}

	var grades []model.ReportCardGradeModel
	if err := ctl.DB.
		Where("report_card_grades_report_card_id = ?", id).
		Order("report_card_grades_created_at ASC").
		Find(&grades).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"report_card": ent,
		"grades":      grades,
	})
}

func (ctl *ReportCardController) ByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.BadRequest(c, "studentId tidak valid")
	}

	var list []model.ReportCardModel
	if err := ctl.DB.
		Where("report_cards_student_id = ?", studentID).
		Order("report_cards_created_at ASC").
		Find(&list).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", list)
}

func (ctl *ReportCardController) ByStudentSemester(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.BadRequest(c, "studentId tidak valid")
	}
	semesterID, err := uuid.Parse(c.Params("semesterId"))
	if err != nil {
		return helper.BadRequest(c, "semesterId tidak valid")
	}

	var ent model.ReportCardModel
	if err := ctl.DB.First(&ent,
		"report_cards_student_id = ? AND report_cards_semester_id = ?",
		studentID, semesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Rapor tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	var grades []model.ReportCardGradeModel
	if err := ctl.DB.
		Where("report_card_grades_report_card_id = ?", ent.ReportCardsID).
		Find(&grades).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "OK", fiber.Map{
		"report_card": ent,
		"grades":      grades,
	})
}

// Create membuat rapor draft kosong (tanpa nilai).
func (ctl *ReportCardController) Create(c *fiber.Ctx) error {
	var body dto.ReportCardCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&model.ReportCardModel{}).
		Where("report_cards_student_id = ? AND report_cards_semester_id = ?",
			body.ReportCardsStudentID, body.ReportCardsSemesterID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Rapor untuk siswa dan semester ini sudah ada")
	}

	ent := model.ReportCardModel{
		ReportCardsStudentID:  body.ReportCardsStudentID,
		ReportCardsSemesterID: body.ReportCardsSemesterID,
		ReportCardsStatus:     constants.ReportDraft,
	}
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.DatabaseError(c, err, "Rapor untuk siswa dan semester ini sudah ada")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Rapor berhasil dibuat", ent)
}

// Generate menjalankan pipeline penuh: nilai akhir tiap mapel dari
// nilai mentah terbobot + ringkasan kehadiran & ekstrakurikuler.
func (ctl *ReportCardController) Generate(c *fiber.Ctx) error {
	var body dto.GenerateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	card, grades, err := ctl.Generator.Generate(body.StudentID, body.SemesterID)
	if err != nil {
		var missingWeight *service.ErrMissingWeight
		switch {
		case errors.Is(err, service.ErrAlreadyGenerated):
			return helper.Conflict(c, err.Error())
		case errors.Is(err, service.ErrNotEnrolled):
			return helper.BadRequest(c, err.Error())
		case errors.As(err, &missingWeight):
			return helper.BadRequest(c, err.Error())
		default:
			// duplikat yang lolos cek awal tertangkap di sini lewat
			// uq_report_cards_student_semester
			return helper.DatabaseError(c, err, "Rapor untuk siswa dan semester ini sudah ada")
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Rapor berhasil digenerate", fiber.Map{
		"report_card": card,
		"grades":      grades,
	})
}

// Update mengisi catatan wali kelas & sikap; ditolak setelah terbit.
func (ctl *ReportCardController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.ReportCardUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ent, errResp := ctl.loadCard(c, id)
	if ent == nil {
		return errResp
	}
	if ent.ReportCardsStatus == constants.ReportPublished {
		return helper.Conflict(c, publishedMessage)
	}

	body.ApplyUpdates(ent)
	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Rapor berhasil diupdate", ent)
}

// Publish mengubah status draft → terbit. Setelah itu rapor beku.
func (ctl *ReportCardController) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	ent, errResp := ctl.loadCard(c, id)
	if ent == nil {
		return errResp
	}
	if ent.ReportCardsStatus == constants.ReportPublished {
		return helper.Conflict(c, "Rapor sudah terbit")
	}

	ent.ReportCardsStatus = constants.ReportPublished
	if err := ctl.DB.Save(ent).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Rapor berhasil diterbitkan", ent)
}

// Delete menghapus rapor draft beserta nilainya; ditolak setelah
// terbit.
func (ctl *ReportCardController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	ent, errResp := ctl.loadCard(c, id)
	if ent == nil {
		return errResp
	}
	if ent.ReportCardsStatus == constants.ReportPublished {
		return helper.Conflict(c, publishedMessage)
	}

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("report_card_grades_report_card_id = ?", id).
			Delete(&model.ReportCardGradeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(ent).Error
	})
	if txErr != nil {
		return helper.DatabaseError(c, txErr, "")
	}

	return helper.Success(c, "Rapor berhasil dihapus", nil)
}

// UpsertGrade menulis manual nilai satu mapel pada rapor draft.
func (ctl *ReportCardController) UpsertGrade(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.SubjectGradeUpsertDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ent, errResp := ctl.loadCard(c, cardID)
	if ent == nil {
		return errResp
	}
	if ent.ReportCardsStatus == constants.ReportPublished {
		return helper.Conflict(c, publishedMessage)
	}

	var cnt int64
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subjects_id = ?", body.ReportCardGradesSubjectID).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt == 0 {
		return helper.BadRequest(c, "Mata pelajaran tidak ditemukan")
	}

	grade, err := ctl.upsertGradeRow(cardID, body)
	if err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Nilai rapor berhasil disimpan", grade)
}

// BulkUpsertGrades menulis banyak nilai mapel sekaligus, per entri
// best-effort.
func (ctl *ReportCardController) BulkUpsertGrades(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}

	var body dto.BulkSubjectGradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ent, errResp := ctl.loadCard(c, cardID)
	if ent == nil {
		return errResp
	}
	if ent.ReportCardsStatus == constants.ReportPublished {
		return helper.Conflict(c, publishedMessage)
	}

	processed := make([]model.ReportCardGradeModel, 0, len(body.Entries))
	var errs []string
	for i, entry := range body.Entries {
		var cnt int64
		if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
			Where("subjects_id = ?", entry.ReportCardGradesSubjectID).
			Count(&cnt).Error; err != nil {
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
			continue
		}
		if cnt == 0 {
			errs = append(errs, fmt.Sprintf("entri %d: mata pelajaran tidak ditemukan", i))
			continue
		}
		grade, err := ctl.upsertGradeRow(cardID, entry)
		if err != nil {
			errs = append(errs, fmt.Sprintf("entri %d: %s", i, err.Error()))
			continue
		}
		processed = append(processed, grade)
	}

	return helper.Success(c, "Upsert nilai rapor selesai", fiber.Map{
		"processed": processed,
		"errors":    errs,
	})
}

func (ctl *ReportCardController) upsertGradeRow(cardID uuid.UUID, entry dto.SubjectGradeUpsertDTO) (model.ReportCardGradeModel, error) {
	var grade model.ReportCardGradeModel
	err := ctl.DB.First(&grade,
		"report_card_grades_report_card_id = ? AND report_card_grades_subject_id = ?",
		cardID, entry.ReportCardGradesSubjectID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		grade = model.ReportCardGradeModel{
			ReportCardGradesReportCardID: cardID,
			ReportCardGradesSubjectID:    entry.ReportCardGradesSubjectID,
			ReportCardGradesFinal:        entry.ReportCardGradesFinal,
			ReportCardGradesPredicate:    entry.ReportCardGradesPredicate,
			ReportCardGradesDescription:  entry.ReportCardGradesDescription,
		}
		return grade, ctl.DB.Create(&grade).Error
	case err != nil:
		return grade, err
	default:
		grade.ReportCardGradesFinal = entry.ReportCardGradesFinal
		grade.ReportCardGradesPredicate = entry.ReportCardGradesPredicate
		grade.ReportCardGradesDescription = entry.ReportCardGradesDescription
		return grade, ctl.DB.Save(&grade).Error
	}
}

// DeleteGrade menghapus satu nilai mapel dari rapor draft.
func (ctl *ReportCardController) DeleteGrade(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.BadRequest(c, "ID tidak valid")
	}
	gradeID, err := uuid.Parse(c.Params("gradeId"))
	if err != nil {
		return helper.BadRequest(c, "gradeId tidak valid")
	}

	ent, errResp := ctl.loadCard(c, cardID)
	if ent == nil {
		return errResp
	}
	if ent.ReportCardsStatus == constants.ReportPublished {
		return helper.Conflict(c, publishedMessage)
	}

	var grade model.ReportCardGradeModel
	if err := ctl.DB.First(&grade,
		"report_card_grades_id = ? AND report_card_grades_report_card_id = ?",
		gradeID, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Nilai rapor tidak ditemukan")
		}
		return helper.DatabaseError(c, err, "")
	}

	if err := ctl.DB.Delete(&grade).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}

	return helper.Success(c, "Nilai rapor berhasil dihapus", nil)
}
