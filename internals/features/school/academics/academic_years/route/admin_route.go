// file: internals/features/school/academics/academic_years/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/academic_years/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func AcademicYearAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAcademicYearController(db)

	grp := api.Group("/academic-years",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola tahun ajaran"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Get("/active", ctl.GetActive)
	grp.Get("/active-period", ctl.GetActivePeriod)
	grp.Get("/stats", ctl.Stats)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Put("/:id/activate", ctl.Activate)
	grp.Delete("/:id", ctl.Delete)
}
