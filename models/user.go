package models

import (
	"microblog/db"
	"microblog/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
}

const saltSize = 60

func UserCreate(username, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	return u, db.Instance.Create(&u).Error
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	if db.Instance.First(&u, "username = ?", username).Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.First(&u, id).Error
	return
}
