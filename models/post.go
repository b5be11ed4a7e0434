package models

import (
	"errors"
	"time"

	"microblog/db"
)

var ErrEmptyText = errors.New("text must not be empty")

type Post struct {
	ID       uint64  `gorm:"primaryKey"`
	Text     string  `gorm:"type:text"`
	PubDate  int64   `gorm:"index:feed_order"` // set once at creation, the only sort key
	AuthorID uint64  `gorm:"index"`
	Author   User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID  *uint64 `gorm:"index"`
	Group    *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Image    string  `gorm:"type:varchar(300)"` // stored media filename, optional
}

func PostCreate(authorID uint64, text string, groupID *uint64, image string) (p Post, err error) {
	if text == "" {
		return p, ErrEmptyText
	}
	p.Text = text
	p.PubDate = time.Now().Unix()
	p.AuthorID = authorID
	p.GroupID = groupID
	p.Image = image
	return p, db.Instance.Create(&p).Error
}

func PostByID(id uint64) (p Post, err error) {
	err = db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
	return
}

// Save persists edits to text, group and image. PubDate and Author never change.
func (p *Post) Save() error {
	if p.Text == "" {
		return ErrEmptyText
	}
	return db.Instance.Model(p).Updates(map[string]interface{}{
		"text":     p.Text,
		"group_id": p.GroupID,
		"image":    p.Image,
	}).Error
}

// Delete removes the post immediately and permanently, comments cascade.
// The feed page cache is intentionally left alone.
func (p *Post) Delete() error {
	if err := db.Instance.Where("post_id = ?", p.ID).Delete(&Comment{}).Error; err != nil {
		return err
	}
	return db.Instance.Delete(p).Error
}

func PostCount() (count int64) {
	db.Instance.Model(&Post{}).Count(&count)
	return
}
