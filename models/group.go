package models

import "microblog/db"

// Group is a posting category. Groups are maintained by an administrator,
// the application itself only reads them; the slug is the stable URL key and
// is never changed once posts reference the group.
type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(200);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupCreate(title, slug, description string) (g Group, err error) {
	g.Title = title
	g.Slug = slug
	g.Description = description
	return g, db.Instance.Create(&g).Error
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title").Find(&groups).Error
	return
}
