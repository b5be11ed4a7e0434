package models

import (
	"time"

	"microblog/db"
)

type Comment struct {
	ID       uint64 `gorm:"primaryKey"`
	Created  int64  `gorm:"index"` // sort key, ascending
	PostID   uint64 `gorm:"index"`
	Post     Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID uint64
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text     string `gorm:"type:text"`
}

// Comments are append-only: never edited or deleted, except when their post goes.
func CommentCreate(postID, authorID uint64, text string) (c Comment, err error) {
	if text == "" {
		return c, ErrEmptyText
	}
	c.PostID = postID
	c.AuthorID = authorID
	c.Text = text
	c.Created = time.Now().Unix()
	return c, db.Instance.Create(&c).Error
}

func CommentsForPost(postID uint64) (comments []Comment, err error) {
	err = db.Instance.Preload("Author").
		Where("post_id = ?", postID).
		Order("created, id").
		Find(&comments).Error
	return
}
