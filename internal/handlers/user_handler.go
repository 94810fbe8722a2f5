package handlers

import (
	"github.com/gin-gonic/gin"

	"testprep-service/internal/service"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.Service.Profile(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, user)
}

func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, stats)
}
