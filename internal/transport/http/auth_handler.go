package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripverse/travel-api/internal/service"
	"github.com/tripverse/travel-api/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService, tokens *util.JWTManager) {
	handler := &AuthHandler{auth: auth}

	group := e.Group("/api/auth")
	group.POST("/register", handler.register)
	group.POST("/login", handler.login)
	group.POST("/google", handler.loginWithGoogle)

	me := group.Group("/me", RequireAuth(tokens))
	me.GET("", handler.profile)
	me.PUT("", handler.updateProfile)
	me.PUT("/password", handler.changePassword)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("invalid request body"))
	}

	result, err := h.auth.Register(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusConflict, util.Fail("email is already registered"))
		case errors.Is(err, service.ErrPasswordPolicy):
			return c.JSON(http.StatusBadRequest, util.Fail(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, util.Fail("invalid email address"))
		default:
			c.Logger().Errorf("auth register: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("registration failed"))
		}
	}
	return c.JSON(http.StatusCreated, util.Success(result))
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("invalid request body"))
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, util.Fail("invalid email or password"))
		case errors.Is(err, service.ErrAccountDisabled):
			return c.JSON(http.StatusForbidden, util.Fail("account is disabled"))
		default:
			c.Logger().Errorf("auth login: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("login failed"))
		}
	}
	return c.JSON(http.StatusOK, util.Success(result))
}

func (h *AuthHandler) loginWithGoogle(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("invalid request body"))
	}

	result, err := h.auth.LoginWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidGoogleToken):
			return c.JSON(http.StatusUnauthorized, util.Fail("invalid google token"))
		case errors.Is(err, service.ErrAccountDisabled):
			return c.JSON(http.StatusForbidden, util.Fail("account is disabled"))
		default:
			c.Logger().Errorf("auth google: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("login failed"))
		}
	}
	return c.JSON(http.StatusOK, util.Success(result))
}

func (h *AuthHandler) profile(c echo.Context) error {
	claims, _ := CurrentClaims(c)

	user, err := h.auth.Profile(c.Request().Context(), claims)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Fail("account no longer exists"))
		}
		c.Logger().Errorf("auth profile: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to load profile"))
	}
	return c.JSON(http.StatusOK, util.Success(user))
}

func (h *AuthHandler) updateProfile(c echo.Context) error {
	claims, _ := CurrentClaims(c)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("invalid request body"))
	}

	user, err := h.auth.UpdateProfile(c.Request().Context(), claims, req.Name, req.AvatarURL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Fail("account no longer exists"))
		}
		c.Logger().Errorf("auth update profile: %v", err)
		return c.JSON(http.StatusInternalServerError, util.Fail("unable to update profile"))
	}
	return c.JSON(http.StatusOK, util.Success(user))
}

func (h *AuthHandler) changePassword(c echo.Context) error {
	claims, _ := CurrentClaims(c)

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Fail("invalid request body"))
	}

	err := h.auth.ChangePassword(c.Request().Context(), claims, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordPolicy):
			return c.JSON(http.StatusBadRequest, util.Fail(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, util.Fail("current password is incorrect"))
		default:
			c.Logger().Errorf("auth change password: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Fail("unable to change password"))
		}
	}
	return c.JSON(http.StatusOK, util.Success(util.Envelope{"changed": true}))
}
