package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"testprep-service/internal/models"
	"testprep-service/internal/service"
)

type AttemptHandler struct {
	Service *service.AttemptService
}

func NewAttemptHandler(s *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{Service: s}
}

// Submit grades a submission for the test in the path and records the
// attempt. Second submissions for the same test are rejected.
func (h *AttemptHandler) Submit(c *gin.Context) {
	var req models.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Submit(c.Request.Context(), userID(c), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, result)
}

// CheckAttempt reports whether the current user already attempted the test.
func (h *AttemptHandler) CheckAttempt(c *gin.Context) {
	attempt, err := h.Service.CheckAttempt(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{
		"attempted": attempt != nil,
		"attempt":   attempt,
	})
}

// History lists the current user's attempts, optionally for one test.
func (h *AttemptHandler) History(c *gin.Context) {
	summaries, err := h.Service.History(c.Request.Context(), userID(c), c.Query("test_id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, summaries)
}

// Review returns a single attempt with the original questions for review.
func (h *AttemptHandler) Review(c *gin.Context) {
	review, err := h.Service.Review(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, review)
}
