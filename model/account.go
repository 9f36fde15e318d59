package model

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `json:"role"`
}

type LoginInput struct {
	UserName string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
