package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/suscommunity/community-api/logmodule"
	"github.com/suscommunity/community-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.CommunityStore
}

// NewServer new instance of server
func NewServer(communityStore store.CommunityStore) *Server {
	return &Server{
		store: communityStore,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", s.root)
	r.GET("/healthz", s.healthz)

	userRoute := r.Group("/users")
	userRoute.Use(logmodule.Ginrus("User"))
	{
		userRoute.POST("", s.createUser)
		userRoute.GET("", s.listUsers)
		userRoute.GET("/:username", s.getUser)
		userRoute.POST("/:username/sustainability-points", s.addSustainabilityPoints)
		userRoute.POST("/:username/goodwill-points", s.addGoodwillPoints)
	}

	postRoute := r.Group("/posts")
	postRoute.Use(logmodule.Ginrus("Post"))
	{
		postRoute.POST("", s.createPost)
		postRoute.GET("", s.listPosts)
		postRoute.GET("/:id", s.getPost)
		postRoute.PUT("/:id", s.updatePost)
		postRoute.PATCH("/:id/status", s.updatePostStatus)
		postRoute.DELETE("/:id", s.deletePost)
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, "SusCommunity API is running")
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
