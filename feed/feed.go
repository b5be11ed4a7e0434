package feed

import (
	"microblog/config"
	"microblog/db"
	"microblog/models"

	"gorm.io/gorm"
)

// Scope narrows the post set a feed is composed from
type Scope func(*gorm.DB) *gorm.DB

func Global() Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx
	}
}

func ByGroup(groupID uint64) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.group_id = ?", groupID)
	}
}

func ByAuthor(authorID uint64) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("posts.author_id = ?", authorID)
	}
}

// ByFollowed selects posts whose author the given user follows
func ByFollowed(userID uint64) Scope {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.
			Joins("join follows on follows.author_id = posts.author_id").
			Where("follows.user_id = ?", userID)
	}
}

// Page is one paginated slice of a feed plus the metadata templates need
type Page struct {
	Posts      []models.Post
	Number     int
	Size       int
	TotalPosts int64
	TotalPages int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) PrevNumber() int {
	return p.Number - 1
}
func (p Page) NextNumber() int {
	return p.Number + 1
}

// Compose returns the requested page of the scoped feed, oldest posts first
// (ties broken by id). Out-of-range page numbers clamp to the nearest valid
// page instead of failing.
func Compose(scope Scope, number int) (page Page, err error) {
	page.Size = config.COUNT_POSTS_ON_PAGE

	err = db.Instance.Model(&models.Post{}).Scopes(scope).Count(&page.TotalPosts).Error
	if err != nil {
		return
	}
	page.TotalPages = int((page.TotalPosts + int64(page.Size) - 1) / int64(page.Size))
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}
	page.Number = number
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Number > page.TotalPages {
		page.Number = page.TotalPages
	}

	err = db.Instance.Model(&models.Post{}).
		Scopes(scope).
		Preload("Author").
		Preload("Group").
		Order("posts.pub_date, posts.id").
		Offset((page.Number - 1) * page.Size).
		Limit(page.Size).
		Find(&page.Posts).Error
	return
}
