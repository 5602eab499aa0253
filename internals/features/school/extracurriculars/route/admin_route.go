// file: internals/features/school/extracurriculars/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/extracurriculars/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func ExtracurricularAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewExtracurricularController(db)

	grp := api.Group("/extracurriculars",
		auth.OnlyRolesSlice(constants.RoleErrorGuru("mengelola ekstrakurikuler"), constants.GuruAndAbove),
	)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)

	grp.Post("/grades", ctl.UpsertGrade)
	grp.Get("/grades/student/:studentId", ctl.GradesByStudent)
	grp.Delete("/grades/:id", ctl.DeleteGrade)
}
