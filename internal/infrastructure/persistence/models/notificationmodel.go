package models

type NotificationModel struct {
	ID         uint    `gorm:"primaryKey"`
	UserID     uint    `gorm:"not null;index:idx_user_read"`
	Type       string  `gorm:"size:50;not null"`
	Title      string  `gorm:"size:200;not null"`
	Message    string  `gorm:"type:text;not null"`
	IsRead     bool    `gorm:"not null;default:false;index:idx_user_read"`
	TicketCode *string `gorm:"size:50"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
