package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ProfileHandler returns the authenticated caller's identity.
type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

type profileResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
}

// Get handles GET /v1/profile.
//
// @Summary      Get the authenticated profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Message: "profile access granted",
		User:    userView{Username: identity.Username, Role: identity.Role},
	})
}
