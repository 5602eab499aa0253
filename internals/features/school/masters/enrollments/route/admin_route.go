// file: internals/features/school/masters/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/masters/enrollments/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func EnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)

	grp := api.Group("/enrollments",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola penempatan siswa"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
