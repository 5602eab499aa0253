// file: internals/features/school/assessments/weights/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/assessments/weights/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func WeightConfigAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewWeightConfigController(db)

	grp := api.Group("/weight-configs",
		auth.OnlyRolesSlice(constants.RoleErrorGuru("mengelola bobot penilaian"), constants.GuruAndAbove),
	)
	grp.Get("/", ctl.List)
	grp.Get("/teaching/:teachingId", ctl.GetByTeaching)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Post("/bulk", ctl.BulkUpsert)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
