package models

import "time"

// Drive is a posted placement opportunity. Drives are global (not owned by a
// user) and immutable once posted; admins create and remove them.
type Drive struct {
	ID          string `json:"id" gorm:"primaryKey;size:64"`
	CompanyName string `json:"company_name" gorm:"not null;size:255"`
	Role        string `json:"role" gorm:"not null;size:255"`
	Description string `json:"description" gorm:"type:text"`
	Date        string `json:"date" gorm:"size:32"`
	LogoURL     string `json:"logo_url" gorm:"size:500"`
	ApplyURL    string `json:"apply_url" gorm:"size:500"`

	CreatedAt time.Time `json:"-"`
}

func (Drive) TableName() string {
	return "drives"
}
