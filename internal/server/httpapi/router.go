// Package httpapi exposes the user service over HTTP using gin.
package httpapi

import (
	"context"

	"github.com/cghdev/userdesk/internal/logging"
	"github.com/cghdev/userdesk/internal/server/models"
	"github.com/gin-gonic/gin"
)

// UserService is the subset of the users service the handlers need.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, u *models.User) (*models.User, error)
	Update(ctx context.Context, u *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// NewRouter builds the gin engine with all user routes registered.
func NewRouter(svc UserService, logger logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger))

	h := &handler{svc: svc}

	user := router.Group("/user")
	{
		user.GET("/all", h.listUsers)
		user.GET("/:id", h.getUser)
		user.POST("/save", h.createUser)
		user.PUT("/update", h.updateUser)
		user.DELETE("/delete/:id", h.deleteUser)
	}

	return router
}
