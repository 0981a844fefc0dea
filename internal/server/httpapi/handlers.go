package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cghdev/userdesk/internal/common"
	"github.com/cghdev/userdesk/internal/server/models"
	"github.com/gin-gonic/gin"
)

type handler struct {
	svc UserService
}

func (h *handler) listUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *handler) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		status(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *handler) createUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user.ID = 0

	saved, err := h.svc.Create(c.Request.Context(), &user)
	if err != nil {
		status(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *handler) updateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.svc.Update(c.Request.Context(), &user)
	if err != nil {
		status(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *handler) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// status maps service errors to HTTP responses.
func status(c *gin.Context, err error) {
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
