// Package model defines the database models of the ad board.
package model

// User is a registered account. Email is immutable after registration.
type User struct {
	Id             int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"column:hashed_password;not null"`
}

// Ad is a classified listing. OwnerId never changes; only the owner may
// update or delete the ad.
type Ad struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	OwnerId     int    `json:"owner_id" gorm:"not null;index"`

	Comments []Comment `json:"-" gorm:"foreignKey:AdId;constraint:OnDelete:CASCADE"`
}

// Comment is a single remark on an ad. The composite unique index keeps
// it to one comment per user per ad; the database enforces it under race.
type Comment struct {
	Id      int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Text    string `json:"text" gorm:"not null"`
	AdId    int    `json:"ad_id" gorm:"not null;uniqueIndex:idx_comments_ad_owner"`
	OwnerId int    `json:"owner_id" gorm:"not null;uniqueIndex:idx_comments_ad_owner"`
}
