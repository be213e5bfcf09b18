package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soko/internal/models/db_models"
	"soko/internal/services"
	"soko/pkg/middleware"
	"soko/pkg/utils"
)

type UserController struct {
	*ResourceController[db_models.User]
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		ResourceController: NewResourceController[db_models.User](userService, db_models.UserQuery),
		userService:        userService,
	}
}

// BindUpdates filters an admin edit down to the profile fields, the password
// never moves through this path.
func (u *UserController) BindUpdates(c *gin.Context) (map[string]any, error) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		return nil, err
	}
	return utils.FilterAllowed(updates, "name", "shop", "email", "telephone", "photo", "role"), nil
}

func (u *UserController) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}
	utils.RespondSuccess(c, user, "")
}

func (u *UserController) UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		fail(c, err)
		return
	}

	updated, err := u.userService.UpdateMe(c.Request.Context(), user, updates)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "")
}

func (u *UserController) DeleteMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}

	if err := u.userService.DeleteMe(c.Request.Context(), user); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
