package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

// UserHandler exposes the admin-only account management surface. Routes
// are gated by RequireRole(admin); the services re-check the actor on
// every mutation.
type UserHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewUserHandler(authService ports.AuthService, userService ports.UserService) *UserHandler {
	return &UserHandler{authService: authService, userService: userService}
}

type createPrivilegedRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=tutor admin"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=tutor admin"`
}

type setStatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type userListResponse struct {
	Users []*domain.User `json:"users"`
}

// List returns every account.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users})
}

// ListTutors returns every tutor account.
//
// @Summary      List tutors
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  map[string]string
// @Router       /users/tutors [get]
func (h *UserHandler) ListTutors(c echo.Context) error {
	users, err := h.userService.ListByRole(c.Request().Context(), domain.RoleTutor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users})
}

// CreatePrivileged creates a tutor or admin account. This is the only
// path through which a non-student role comes into existence.
//
// @Summary      Create a privileged account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPrivilegedRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/tutors [post]
func (h *UserHandler) CreatePrivileged(c echo.Context) error {
	authCtx, err := callerContext(c)
	if err != nil {
		return err
	}

	var req createPrivilegedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.CreatePrivilegedAccount(c.Request().Context(), authCtx, req.Email, req.Password, req.Name, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Get returns one account.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SetRole elevates an account's role.
//
// @Summary      Elevate a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setRoleRequest  true  "New role"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  map[string]string
// @Router       /users/{id}/role [put]
func (h *UserHandler) SetRole(c echo.Context) error {
	authCtx, err := callerContext(c)
	if err != nil {
		return err
	}

	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.SetRole(c.Request().Context(), authCtx, c.Param("id"), role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role updated"})
}

// SetStatus activates or deactivates an account.
//
// @Summary      Activate or deactivate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setStatusRequest  true  "Status"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  map[string]string
// @Router       /users/{id}/status [put]
func (h *UserHandler) SetStatus(c echo.Context) error {
	authCtx, err := callerContext(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.userService.SetActive(c.Request().Context(), authCtx, c.Param("id"), *req.Active); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "status updated"})
}

// Delete removes an account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	authCtx, err := callerContext(c)
	if err != nil {
		return err
	}
	if err := h.userService.Delete(c.Request().Context(), authCtx, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}
