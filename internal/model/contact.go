package model

// ContactMessage is an append-only record from the site contact form.
// No update or delete operations exist for it.
type ContactMessage struct {
	UUIDBase
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Subject string `gorm:"size:200" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
