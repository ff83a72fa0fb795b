package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"velorabook/pkg/viewer"
	"velorabook/pkg/wizard"
)

// viewerFor returns the session's viewer, opening it from the store on first use.
func (s *Server) viewerFor(c echo.Context, sess *wizard.Session) *viewer.Viewer {
	if v, ok := s.viewers.Load(sess.ID); ok {
		return v
	}
	v := viewer.Open(c.Request().Context(), s.Store, sess.ID)
	s.viewers.Store(sess.ID, v)
	return v
}

// GET /api/sessions/:id/book
func (s *Server) handleGetBook(c echo.Context, sess *wizard.Session) error {
	return c.JSON(http.StatusOK, s.viewerFor(c, sess).State())
}

// POST /api/sessions/:id/book/cover
func (s *Server) handlePostCover(c echo.Context, sess *wizard.Session) error {
	return c.JSON(http.StatusOK, s.viewerFor(c, sess).ShowCover())
}

// POST /api/sessions/:id/book/contents
func (s *Server) handlePostContents(c echo.Context, sess *wizard.Session) error {
	return c.JSON(http.StatusOK, s.viewerFor(c, sess).ShowContents())
}

// POST /api/sessions/:id/book/next
func (s *Server) handlePostNextChapter(c echo.Context, sess *wizard.Session) error {
	return c.JSON(http.StatusOK, s.viewerFor(c, sess).Next())
}

// POST /api/sessions/:id/book/prev
func (s *Server) handlePostPrevChapter(c echo.Context, sess *wizard.Session) error {
	return c.JSON(http.StatusOK, s.viewerFor(c, sess).Prev())
}

// POST /api/sessions/:id/book/chapters/:index
func (s *Server) handlePostChapter(c echo.Context, sess *wizard.Session) error {
	k, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid chapter index")
	}
	return c.JSON(http.StatusOK, s.viewerFor(c, sess).GoTo(k))
}
