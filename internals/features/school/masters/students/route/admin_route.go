package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/masters/students/controller"
	authMiddleware "siakadku_backend/internals/middlewares/auth"
)

// Base path contoh: /api/a/students
func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	admin := api.Group("/students",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola data siswa"),
			constants.AdminOnly,
		),
	)

	admin.Get("/", ctl.List)
	admin.Get("/:id", ctl.GetByID)
	admin.Post("/", ctl.Create)
	admin.Put("/:id", ctl.Update)
	admin.Delete("/:id", ctl.Delete)
}
