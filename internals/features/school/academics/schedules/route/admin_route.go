// file: internals/features/school/academics/schedules/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/academics/schedules/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func ScheduleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewScheduleSlotController(db)

	grp := api.Group("/schedules",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("mengelola jadwal pelajaran"), constants.AdminOnly),
	)
	grp.Get("/", ctl.List)
	grp.Get("/stats", ctl.Stats)
	grp.Get("/class/:classId", ctl.ByClass)
	grp.Get("/teacher/:teacherId", ctl.ByTeacher)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
