package model

import "time"

type CertificateStatus string

const (
	CertificateActive  CertificateStatus = "Active"
	CertificateExpired CertificateStatus = "Expired"
	CertificateRevoked CertificateStatus = "Revoked"
)

// Certificate 课程完成证明，验证码是全局唯一的查验凭据
// (user_id, course_id) 唯一：同一用户同一课程至多一张证书，撤销后也不释放
// swagger:model Certificate
type Certificate struct {
	BaseModel
	UserID           uint              `gorm:"uniqueIndex:idx_certificate_user_course;not null" json:"userId"`
	CourseID         uint              `gorm:"uniqueIndex:idx_certificate_user_course;not null" json:"courseId"`
	VerificationCode string            `gorm:"size:64;uniqueIndex;not null" json:"verificationCode"`
	IssuedDate       time.Time         `json:"issuedDate"`
	ExpiryDate       *time.Time        `json:"expiryDate,omitempty"`
	Status           CertificateStatus `gorm:"size:20;default:'Active'" json:"status"`
}

func (Certificate) TableName() string {
	return "certificates"
}
