package models

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	FullName     string `gorm:"size:200"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
