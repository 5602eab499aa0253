// file: internals/features/school/report_cards/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/report_cards/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func ReportCardAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewReportCardController(db)

	grp := api.Group("/report-cards",
		auth.OnlyRolesSlice(constants.RoleErrorGuru("mengelola rapor"), constants.GuruAndAbove),
	)
	grp.Get("/", ctl.List)
	grp.Get("/student/:studentId", ctl.ByStudent)
	grp.Get("/student/:studentId/semester/:semesterId", ctl.ByStudentSemester)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Post("/generate", ctl.Generate)
	grp.Put("/:id", ctl.Update)
	grp.Put("/:id/publish", ctl.Publish)
	grp.Delete("/:id", ctl.Delete)

	grp.Post("/:id/grades", ctl.UpsertGrade)
	grp.Post("/:id/grades/bulk", ctl.BulkUpsertGrades)
	grp.Delete("/:id/grades/:gradeId", ctl.DeleteGrade)
}
