package model

import "time"

// swagger:model User
type User struct {
	BaseModel
	Email       string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"size:100;not null" json:"-"`
	FirstName   string     `gorm:"size:100;not null" json:"firstName"`
	LastName    string     `gorm:"size:100;not null" json:"lastName"`
	PhoneNumber string     `gorm:"size:30" json:"phoneNumber,omitempty"`
	Country     string     `gorm:"size:100" json:"country,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	IsVerified  bool       `gorm:"default:false" json:"isVerified"`
}

func (User) TableName() string {
	return "users"
}

// FullName 证书展示用的完整姓名
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
