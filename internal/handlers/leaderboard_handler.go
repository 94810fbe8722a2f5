package handlers

import (
	"github.com/gin-gonic/gin"

	"testprep-service/internal/service"
)

type LeaderboardHandler struct {
	Service *service.LeaderboardService
}

func NewLeaderboardHandler(s *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{Service: s}
}

// Get returns the ranked leaderboard for a test, personalized for the
// requesting user.
func (h *LeaderboardHandler) Get(c *gin.Context) {
	view, err := h.Service.Build(c.Request.Context(), c.Param("testId"), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, view)
}
