// file: internals/features/school/assessments/assessments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/assessments/assessments/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func AssessmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAssessmentController(db)

	grp := api.Group("/assessments",
		auth.OnlyRolesSlice(constants.RoleErrorGuru("mengelola penilaian"), constants.GuruAndAbove),
	)
	grp.Get("/", ctl.List)
	grp.Get("/stats", ctl.Stats)
	grp.Get("/teaching/:teachingId", ctl.ByTeaching)
	grp.Get("/teacher/:teacherId", ctl.ByTeacher)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
