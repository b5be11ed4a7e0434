package models

import (
	"errors"

	"microblog/db"

	"gorm.io/gorm"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// Follow is a directed edge: user reads author. The composite primary key
// keeps the edge unique at the store level, so concurrent identical follow
// requests still end up with a single row.
type Follow struct {
	CreatedAt int64
	UserID    uint64 `gorm:"primaryKey"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"primaryKey"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowAuthor ensures exactly one edge exists. Repeated calls are no-ops.
func FollowAuthor(userID, authorID uint64) error {
	if userID == authorID {
		return ErrSelfFollow
	}
	follow := Follow{UserID: userID, AuthorID: authorID}
	return db.Instance.FirstOrCreate(&follow, follow).Error
}

// UnfollowAuthor removes the edge, gorm.ErrRecordNotFound if there is none.
func UnfollowAuthor(userID, authorID uint64) error {
	result := db.Instance.Where("user_id = ? and author_id = ?", userID, authorID).Delete(&Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsFollowing is false for anonymous users and for self
func IsFollowing(userID, authorID uint64) bool {
	if userID == 0 || userID == authorID {
		return false
	}
	var count int64
	db.Instance.Model(&Follow{}).Where("user_id = ? and author_id = ?", userID, authorID).Count(&count)
	return count > 0
}

func FollowCount(userID, authorID uint64) (count int64) {
	db.Instance.Model(&Follow{}).Where("user_id = ? and author_id = ?", userID, authorID).Count(&count)
	return
}
