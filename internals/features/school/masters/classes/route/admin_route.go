// file: internals/features/school/masters/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/masters/classes/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func ClassAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassController(db)

	grp := api.Group("/classes",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola kelas"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
