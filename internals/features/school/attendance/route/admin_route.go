// file: internals/features/school/attendance/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/attendance/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	grp := api.Group("/attendances",
		auth.OnlyRolesSlice(constants.RoleErrorGuru("mengelola kehadiran"), constants.GuruAndAbove),
	)
	grp.Get("/", ctl.List)
	grp.Get("/student/:studentId/recap", ctl.RecapByStudent)
	grp.Post("/", ctl.Upsert)
	grp.Post("/bulk", ctl.BulkUpsert)
	grp.Delete("/:id", ctl.Delete)
}
