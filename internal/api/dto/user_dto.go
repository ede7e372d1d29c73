package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Username  string  `json:"username" binding:"required" validate:"min=3,max=20,alphanum"`
	Email     string  `json:"email" binding:"required" validate:"required,email"`
	Password  string  `json:"password" binding:"required" validate:"min=6,max=72"`
	FirstName string  `json:"firstName" validate:"max=50"`
	LastName  string  `json:"lastName" validate:"max=50"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// CredentialDTO 登录凭证，用户名或邮箱二选一
type CredentialDTO struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password" binding:"required"`
}

// UserDTO 用户资料
type UserDTO struct {
	UserID    *uint64    `json:"id,omitempty"`
	Username  *string    `json:"username,omitempty"`
	Email     *string    `json:"email,omitempty"`
	FirstName *string    `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName  *string    `json:"lastName,omitempty" validate:"omitempty,max=50"`
	AvatarURL *string    `json:"avatarUrl,omitempty" validate:"omitempty,max=512"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// SearchUserDTO 用户搜索结果，isFollowing 表示当前用户是否已关注
type SearchUserDTO struct {
	UserID      uint64  `json:"id"`
	Username    *string `json:"username"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	AvatarURL   string  `json:"avatarUrl"`
	IsFollowing bool    `json:"isFollowing"`
}
