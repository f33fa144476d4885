package models

import "time"

// WaitlistEntry is one normalized waitlist submission. The ID is assigned by
// the storage backend; spreadsheet rows have none.
type WaitlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id,omitempty"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	IPAddress string    `gorm:"column:ip_address" json:"ip_address,omitempty"`
	UserAgent string    `gorm:"column:user_agent" json:"user_agent,omitempty"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist_entries"
}
