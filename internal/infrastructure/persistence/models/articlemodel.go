package models

import "gorm.io/datatypes"

type ArticleModel struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"size:255;not null"`
	Content     string         `gorm:"type:longtext;not null"`
	Excerpt     string         `gorm:"size:500"`
	Category    string         `gorm:"size:100;not null;index"`
	Tags        datatypes.JSON `gorm:"type:json"`
	AuthorID    *uint          `gorm:"index"`
	Views       int            `gorm:"not null;default:0"`
	RatingSum   int            `gorm:"not null;default:0"`
	RatingCount int            `gorm:"not null;default:0"`
	IsPublished bool           `gorm:"not null;default:true;index"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (ArticleModel) TableName() string {
	return "kb_articles"
}

type ArticleRatingModel struct {
	ID        uint  `gorm:"primaryKey"`
	ArticleID uint  `gorm:"not null;index;uniqueIndex:idx_article_user"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_article_user"`
	Value     int   `gorm:"not null"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ArticleRatingModel) TableName() string {
	return "kb_article_ratings"
}
