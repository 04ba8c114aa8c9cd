package models

type TicketModel struct {
	ID              uint   `gorm:"primaryKey"`
	Code            string `gorm:"uniqueIndex;size:50;not null"`
	Subject         string `gorm:"size:200;not null"`
	Description     string `gorm:"type:text;not null"`
	Category        string `gorm:"size:100;not null;index"`
	Priority        string `gorm:"size:20;not null;index"`
	Status          string `gorm:"size:20;not null;index"`
	CustomerID      *uint  `gorm:"index"`
	AssigneeID      *uint  `gorm:"index"`
	FirstResponseAt *int64
	ResolvedAt      *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketCode string `gorm:"size:50;not null;index"`
	UserID     uint   `gorm:"not null;index"`
	Content    string `gorm:"type:text;not null"`
	IsInternal bool   `gorm:"not null;default:false"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type RatingModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketCode string `gorm:"uniqueIndex;size:50;not null"`
	UserID     uint   `gorm:"not null;index"`
	Rating     int    `gorm:"not null"`
	Feedback   string `gorm:"type:text"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RatingModel) TableName() string {
	return "ticket_ratings"
}
