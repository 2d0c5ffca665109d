package model

import "time"

// LoginAttempt records one credential check, successful or not. The auth
// service counts recent failures per username+IP to refuse brute-force runs.
type LoginAttempt struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"index;not null"`
	IP        string `gorm:"index;not null"`
	Success   bool   `gorm:"not null"`
	UserAgent string
	CreatedAt time.Time `gorm:"index"`
}

func (LoginAttempt) TableName() string { return "login_attempts" }
