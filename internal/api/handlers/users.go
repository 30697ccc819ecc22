package handlers

import (
	"net/http"

	"assuredgig/internal/api/middleware"
	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds dependencies for account and profile operations
type UserHandler struct {
	service      services.UserService
	validator    *validator.Validate
	cookieSecure bool
}

// NewUserHandler creates a new UserHandler. cookieSecure marks the session cookie Secure.
func NewUserHandler(service services.UserService, validate *validator.Validate, cookieSecure bool) *UserHandler {
	return &UserHandler{service: service, validator: validate, cookieSecure: cookieSecure}
}

// Register godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true "Account details"
// @Success      201  {object}  dto.AuthResponse
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input or email taken"
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	res, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "register user")
		return
	}
	h.setSessionCookie(c, res)
	c.JSON(http.StatusCreated, MapAuthResultToResponse(res))
}

// Login godoc
// @Summary      Log in
// @Description  Returns an access and refresh token and sets the ag_session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Email and password"
// @Success      200  {object}  dto.AuthResponse
// @Failure      401  {object}  map[string]string "Invalid credentials"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	res, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "log in")
		return
	}
	h.setSessionCookie(c, res)
	c.JSON(http.StatusOK, MapAuthResultToResponse(res))
}

// Refresh godoc
// @Summary      Refresh an access token
// @Description  Rotates the refresh token; the old one stops working.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RefreshRequest true "Refresh token"
// @Success      200  {object}  dto.AuthResponse
// @Failure      401  {object}  map[string]string "Invalid or expired refresh token"
// @Router       /auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	res, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "refresh session")
		return
	}
	h.setSessionCookie(c, res)
	c.JSON(http.StatusOK, MapAuthResultToResponse(res))
}

// Logout revokes the caller's session and clears the cookie.
// @Tags         auth
// @Success      204 "No Content"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *UserHandler) Logout(c *gin.Context) {
	req := dto.LogoutRequest{SessionID: middleware.GetSessionIDFromContext(c)}
	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondError(c, err, "log out")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	c.Status(http.StatusNoContent)
}

// GetMe returns the caller's own profile, including email.
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string "Unauthorized"
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), &dto.GetUserByIDRequest{ID: userID})
	if err != nil {
		respondError(c, err, "retrieve user")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user, true))
}

// GetUserByID godoc
// @Summary      Get a public profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID" Format(uuid)
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  map[string]string "User Not Found"
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), &dto.GetUserByIDRequest{ID: id})
	if err != nil {
		respondError(c, err, "retrieve user")
		return
	}
	callerID, _ := middleware.GetUserIDFromContext(c)
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user, callerID == user.ID))
}

// UpdateMe godoc
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body dto.UpdateProfileRequest true "Fields to change"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  map[string]string "Invalid input"
// @Router       /users/me [patch]
// @Security     BearerAuth
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	req.UserID = userID

	user, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update profile")
		return
	}
	c.JSON(http.StatusOK, MapUserModelToUserResponse(user, true))
}

func (h *UserHandler) setSessionCookie(c *gin.Context, res *services.AuthResult) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, res.AccessToken, int(res.ExpiresIn), "/", "", h.cookieSecure, true)
}
