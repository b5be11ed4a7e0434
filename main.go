package main

import (
	"html/template"
	"os"
	"strings"
	"time"

	"microblog/auth"
	"microblog/config"
	"microblog/db"
	"microblog/handlers"
	"microblog/models"
	"microblog/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func setupRouter() (*gin.Engine, *utils.PageCache) {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.SetFuncMap(template.FuncMap{
		"preview": func(s string) string {
			return utils.Preview(s, config.COUNT_PREVIEW_SYMBOL)
		},
		"date": func(unix int64) string {
			return time.Unix(unix, 0).Format("2 Jan 2006 15:04")
		},
	})
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	pageCache := utils.NewPageCache(time.Duration(config.FEED_CACHE_TTL) * time.Second)

	// Public pages. Only the global feed goes through the page cache.
	router.GET("/", pageCache.Middleware(), handlers.Index)
	router.GET("/group/:slug/", handlers.GroupPosts)
	router.GET("/profile/:username/", handlers.Profile)
	router.GET("/posts/:id/", handlers.PostDetail)

	// Pages behind the auth gate
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", handlers.PostCreateForm)
	authRouter.POST("/create/", handlers.PostCreate)
	authRouter.GET("/posts/:id/edit/", handlers.PostEditForm)
	authRouter.POST("/posts/:id/edit/", handlers.PostEdit)
	authRouter.POST("/posts/:id/comment/", handlers.AddComment)
	authRouter.GET("/follow/", handlers.FollowIndex)
	authRouter.GET("/profile/:username/follow/", handlers.ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", handlers.ProfileUnfollow)

	// Identity
	router.GET("/auth/signup/", handlers.SignUpForm)
	router.POST("/auth/signup/", handlers.SignUp)
	router.GET("/auth/login/", handlers.LogInForm)
	router.POST("/auth/login/", handlers.LogIn)
	router.GET("/auth/logout/", handlers.LogOut)

	// Uploaded post images
	router.Static("/media", config.MEDIA_DIR)

	return router, pageCache
}

func main() {
	if config.DEBUG_MODE {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db.Init()
	models.Init()
	router, _ := setupRouter()

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatal().Err(err).Msg("server stopped")
}
