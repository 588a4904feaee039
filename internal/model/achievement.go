package model

import "time"

// swagger:model Achievement
type Achievement struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:255" json:"icon,omitempty"`
	Criteria    string `gorm:"type:text" json:"criteria"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// swagger:model UserAchievement
type UserAchievement struct {
	BaseModel
	UserID        uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"userId"`
	AchievementID uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"achievementId"`
	EarnedDate    time.Time `json:"earnedDate"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
