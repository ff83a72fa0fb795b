package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"velorabook/pkg/schema"
	"velorabook/pkg/utils"
	"velorabook/pkg/wizard"
)

// POST /api/generate-book
//
// Every failure, including a malformed body, is answered with the fixed envelope and
// status 500; the cause is only logged.
func (s *Server) handlePostGenerateBook(c echo.Context) error {
	var req schema.GenerateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("invalid JSON in /api/generate-book", "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON(wizard.MsgGenerationFailed))
	}
	log.Info("generating book", "bookType", req.BookType, "answers", len(req.Answers))
	for id, a := range req.Answers {
		log.Debug("answer", "question", id, "value", utils.LimitStr(a, 80))
	}

	res, err := s.Books.Generate(c.Request().Context(), req.BookType, req.Answers)
	if err != nil {
		log.Error("book generation failed", "bookType", req.BookType, "error", err)
		return c.JSON(http.StatusInternalServerError, utils.ErrJSON(wizard.MsgGenerationFailed))
	}

	return c.JSON(http.StatusOK, schema.GenerateResponse{
		Success:  true,
		Book:     res.Book,
		Metadata: res.Metadata,
	})
}
