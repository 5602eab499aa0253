// file: internals/features/school/assessments/scores/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/school/assessments/scores/controller"
	"siakadku_backend/internals/middlewares/auth"
)

func ScoreAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewScoreController(db)

	grp := api.Group("/scores",
		auth.OnlyRolesSlice(constants.RoleErrorGuru("mengelola nilai"), constants.GuruAndAbove),
	)
	grp.Get("/", ctl.List)
	grp.Get("/assessment/:assessmentId", ctl.ByAssessment)
	grp.Get("/assessment/:assessmentId/recap", ctl.Recap)
	grp.Get("/student/:studentId", ctl.ByStudent)
	grp.Post("/", ctl.Upsert)
	grp.Post("/bulk", ctl.BulkUpsert)
	grp.Delete("/:id", ctl.Delete)
}
