package auth

import (
	"microblog/db"
	"microblog/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIdKey = "id"

type Session struct {
	sessions.Session
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

func (s *Session) LoginUser(id uint64) {
	s.Set(userIdKey, id)
	s.Save()
}

func (s *Session) LogoutUser() {
	s.Delete(userIdKey)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	s.Save()
}

// User loads the session user; a zero ID means anonymous
func (s *Session) User() (user models.User) {
	id := s.Get(userIdKey)
	if id == nil {
		return
	}
	userID, ok := id.(uint64)
	if !ok {
		return
	}
	user.ID = userID
	if db.Instance.First(&user).Error != nil {
		user.ID = 0
	}
	return
}
