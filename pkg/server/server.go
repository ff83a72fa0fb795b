package server

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"velorabook/pkg/store"
	"velorabook/pkg/utils"
	"velorabook/pkg/viewer"
	"velorabook/pkg/wizard"
)

type Server struct {
	Echo     *echo.Echo
	Books    wizard.Generator
	Sessions *wizard.Manager
	Store    store.Store
	Ctx      context.Context

	// viewers holds the open viewer of each session, keyed by session id.
	viewers *utils.SyncMap[string, *viewer.Viewer]
}

func NewServer(ctx context.Context, books wizard.Generator, sessions *wizard.Manager, st store.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestMetrics)

	s := &Server{
		Echo:     e,
		Books:    books,
		Sessions: sessions,
		Store:    st,
		Ctx:      ctx,
		viewers:  utils.NewSyncMap[string, *viewer.Viewer](),
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)
	s.Echo.GET("/metrics", handleGetMetrics)

	api := s.Echo.Group("/api")
	api.GET("/book-types", s.handleGetBookTypes)
	api.GET("/book/schema", s.handleGetBookSchema)
	api.POST("/generate-book", s.handlePostGenerateBook)

	sessions := api.Group("/sessions")
	sessions.POST("", s.handlePostSession)
	sessions.GET("/:id", s.withSession(s.handleGetSession))
	sessions.DELETE("/:id", s.withSession(s.handleDeleteSession))
	sessions.POST("/:id/type", s.withSession(s.handlePostType))
	sessions.PUT("/:id/answers/:question", s.withSession(s.handlePutAnswer))
	sessions.POST("/:id/answers/:question/files", s.withSession(s.handlePostFiles))
	sessions.POST("/:id/next", s.withSession(s.handlePostNext))
	sessions.POST("/:id/prev", s.withSession(s.handlePostPrev))

	book := sessions.Group("/:id/book")
	book.GET("", s.withSession(s.handleGetBook))
	book.POST("/cover", s.withSession(s.handlePostCover))
	book.POST("/contents", s.withSession(s.handlePostContents))
	book.POST("/next", s.withSession(s.handlePostNextChapter))
	book.POST("/prev", s.withSession(s.handlePostPrevChapter))
	book.POST("/chapters/:index", s.withSession(s.handlePostChapter))
}

func (s *Server) Start(addr string) error {
	log.Info("server listening", "addr", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("shutting down server")
	return s.Echo.Shutdown(ctx)
}
