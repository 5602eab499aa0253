// file: internals/features/school/masters/employees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/masters/employees/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func EmployeeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewEmployeeController(db)

	grp := api.Group("/employees",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola data pegawai"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
