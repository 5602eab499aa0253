// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"siakadku_backend/internals/configs"
	"siakadku_backend/internals/features/users/auth/dto"
	"siakadku_backend/internals/features/users/auth/model"
	helper "siakadku_backend/internals/helpers"
)

const tokenLifetime = 12 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// Login memverifikasi kredensial dan menerbitkan JWT HS256.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctl.DB.First(&user, "users_username = ?", strings.TrimSpace(body.Username)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return helper.DatabaseError(c, err, "")
	}
	if !user.UsersIsActive {
		return helper.Error(c, fiber.StatusUnauthorized, "Akun dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UsersPassword), []byte(body.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.UsersID.String(),
		"username": user.UsersUsername,
		"role":     user.UsersRole,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menerbitkan token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  now.Add(tokenLifetime),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   configs.IsProduction(),
	})

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenLifetime.Seconds()),
		User: fiber.Map{
			"users_id":        user.UsersID,
			"users_username":  user.UsersUsername,
			"users_full_name": user.UsersFullName,
			"users_role":      user.UsersRole,
		},
	})
}

// Register membuat akun baru. Hanya dipakai admin untuk provisioning.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.BadRequest(c, "Body tidak valid: "+err.Error())
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&model.UserModel{}).
		Where("users_username = ?", body.Username).
		Count(&cnt).Error; err != nil {
		return helper.DatabaseError(c, err, "")
	}
	if cnt > 0 {
		return helper.Conflict(c, "Username sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UsersUsername: strings.TrimSpace(body.Username),
		UsersPassword: string(hash),
		UsersFullName: strings.TrimSpace(body.FullName),
		UsersRole:     body.Role,
		UsersIsActive: true,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		return helper.DatabaseError(c, err, "Username sudah terdaftar")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Akun berhasil dibuat", fiber.Map{
		"users_id":        user.UsersID,
		"users_username":  user.UsersUsername,
		"users_full_name": user.UsersFullName,
		"users_role":      user.UsersRole,
	})
}

// Me mengembalikan identitas dari klaim token.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	return helper.Success(c, "OK", fiber.Map{
		"user_id":  c.Locals("user_id"),
		"username": c.Locals("username"),
		"role":     c.Locals("userRole"),
	})
}

// Logout menghapus cookie access_token.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.Success(c, "Logout berhasil", nil)
}
