// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"siakadku_backend/internals/constants"
	"siakadku_backend/internals/features/users/auth/controller"
	"siakadku_backend/internals/middlewares"
	"siakadku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/logout", ctl.Logout)

	protected := grp.Group("", auth.AuthMiddleware())
	protected.Get("/me", ctl.Me)
	protected.Post("/register",
		auth.OnlyRolesSlice(constants.RoleErrorAdmin("membuat akun"), constants.AdminOnly),
		ctl.Register,
	)
}
