// file: internals/features/school/masters/subjects/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/masters/subjects/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func SubjectAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	grp := api.Group("/subjects",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola mata pelajaran"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
