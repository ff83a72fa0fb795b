package server

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"velorabook/pkg/viewer"
	"velorabook/pkg/wizard"
)

type typeReq struct {
	BookType string `json:"bookType" form:"bookType"`
}

type answerReq struct {
	Value string `json:"value" form:"value"`
}

type filesResp struct {
	Accepted []wizard.FileRef `json:"accepted"`
	Rejected int              `json:"rejected"`
	Session  wizard.Snapshot  `json:"session"`
}

func (s *Server) withSession(h func(echo.Context, *wizard.Session) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := s.Sessions.Get(c.Param("id"))
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return h(c, sess)
	}
}

// sessionResult maps a wizard outcome to a response. A failed generation is not a
// request error: the snapshot carries the user-facing message and the session stays
// usable.
func sessionResult(c echo.Context, sess *wizard.Session, err error) error {
	switch {
	case err == nil, errors.Is(err, wizard.ErrGeneration):
		return c.JSON(http.StatusOK, sess.Snapshot())
	case errors.Is(err, wizard.ErrGenerationInFlight):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
}

// POST /api/sessions
func (s *Server) handlePostSession(c echo.Context) error {
	sess := s.Sessions.Create()
	s.viewers.DeleteFunc(func(id string, _ *viewer.Viewer) bool {
		_, ok := s.Sessions.Get(id)
		return !ok
	})
	return c.JSON(http.StatusCreated, sess.Snapshot())
}

// GET /api/sessions/:id
func (s *Server) handleGetSession(c echo.Context, sess *wizard.Session) error {
	return c.JSON(http.StatusOK, sess.Snapshot())
}

// DELETE /api/sessions/:id
//
// A session that is generating a book is kept until the generation settles.
func (s *Server) handleDeleteSession(c echo.Context, sess *wizard.Session) error {
	if sess.Generating() {
		return echo.NewHTTPError(http.StatusConflict, wizard.ErrGenerationInFlight.Error())
	}
	s.Sessions.Delete(sess.ID)
	s.viewers.Delete(sess.ID)
	return c.NoContent(http.StatusNoContent)
}

// POST /api/sessions/:id/type
func (s *Server) handlePostType(c echo.Context, sess *wizard.Session) error {
	var req typeReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	return sessionResult(c, sess, sess.SelectType(req.BookType))
}

// PUT /api/sessions/:id/answers/:question
func (s *Server) handlePutAnswer(c echo.Context, sess *wizard.Session) error {
	var req answerReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	return sessionResult(c, sess, sess.Answer(c.Param("question"), req.Value))
}

// POST /api/sessions/:id/answers/:question/files
//
// Uploads are inspected for type and size only; the bytes are discarded.
func (s *Server) handlePostFiles(c echo.Context, sess *wizard.Session) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	var refs []wizard.FileRef
	for _, headers := range form.File {
		for _, fh := range headers {
			refs = append(refs, wizard.FileRef{
				Name:        fh.Filename,
				ContentType: contentType(fh),
				Size:        fh.Size,
			})
		}
	}

	accepted, err := sess.AttachFiles(c.Param("question"), refs)
	if err != nil {
		return sessionResult(c, sess, err)
	}
	return c.JSON(http.StatusOK, filesResp{
		Accepted: accepted,
		Rejected: len(refs) - len(accepted),
		Session:  sess.Snapshot(),
	})
}

// contentType sniffs the upload when the client did not declare a specific type.
func contentType(fh *multipart.FileHeader) string {
	declared := fh.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	f, err := fh.Open()
	if err != nil {
		return declared
	}
	defer f.Close()
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return declared
	}
	return http.DetectContentType(head[:n])
}

// POST /api/sessions/:id/next
//
// On the last question this blocks until the book is generated or the session
// timeout expires. A client disconnect does not abort the generation.
func (s *Server) handlePostNext(c echo.Context, sess *wizard.Session) error {
	ctx := context.WithoutCancel(c.Request().Context())
	err := sess.Next(ctx)
	if err == nil && sess.Snapshot().State == wizard.StateDone {
		s.viewers.Delete(sess.ID)
		log.Info("book ready for viewer", "session", sess.ID)
	}
	return sessionResult(c, sess, err)
}

// POST /api/sessions/:id/prev
func (s *Server) handlePostPrev(c echo.Context, sess *wizard.Session) error {
	return sessionResult(c, sess, sess.Prev())
}
