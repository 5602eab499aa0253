// file: internals/features/school/academics/teachings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/teachings/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func TeachingAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeachingController(db)

	grp := api.Group("/teachings",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola penugasan mengajar"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Get("/teacher/:teacherId", ctl.ByTeacher)
	grp.Get("/class/:classId", ctl.ByClass)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
