// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UsersID       uuid.UUID `json:"users_id"        gorm:"column:users_id;type:uuid;primaryKey"`
	UsersUsername string    `json:"users_username"  gorm:"column:users_username;type:varchar(50);uniqueIndex;not null"`
	UsersPassword string    `json:"-"               gorm:"column:users_password;type:varchar(100);not null"` // bcrypt hash
	UsersFullName string    `json:"users_full_name" gorm:"column:users_full_name;type:varchar(120);not null"`
	UsersRole     string    `json:"users_role"      gorm:"column:users_role;type:varchar(20);not null;default:'siswa'"`
	UsersIsActive bool      `json:"users_is_active" gorm:"column:users_is_active;not null;default:true"`

	UsersCreatedAt time.Time `json:"users_created_at" gorm:"column:users_created_at;autoCreateTime"`
	UsersUpdatedAt time.Time `json:"users_updated_at" gorm:"column:users_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UsersID == uuid.Nil {
		m.UsersID = uuid.New()
	}
	return nil
}
