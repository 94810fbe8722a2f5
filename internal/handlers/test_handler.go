package handlers

import (
	"github.com/gin-gonic/gin"

	"testprep-service/internal/service"
)

type TestHandler struct {
	Service *service.TestService
}

func NewTestHandler(s *service.TestService) *TestHandler {
	return &TestHandler{Service: s}
}

// List returns the active test catalog with the caller's access resolved.
func (h *TestHandler) List(c *gin.Context) {
	tests, err := h.Service.List(c.Request.Context(), userID(c), c.Query("subject"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, tests)
}

// Get returns the sanitized test for attempt-taking.
func (h *TestHandler) Get(c *gin.Context) {
	detail, err := h.Service.GetDetail(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, detail)
}
