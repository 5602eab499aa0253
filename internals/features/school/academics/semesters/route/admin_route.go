// file: internals/features/school/academics/semesters/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/semesters/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func SemesterAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSemesterController(db)

	grp := api.Group("/semesters",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola semester"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Get("/active", ctl.GetActive)
	grp.Get("/stats", ctl.Stats)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Put("/:id/activate", ctl.Activate)
}
