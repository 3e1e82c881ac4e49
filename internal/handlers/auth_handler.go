package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CampusPrep-2025/placement-service/internal/services"
	"github.com/CampusPrep-2025/placement-service/internal/utils"
	"github.com/CampusPrep-2025/placement-service/internal/validator"
)

// CredentialsRequest carries sign-up and sign-in credentials.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthHandler struct {
	BaseHandler
	session   services.SessionService
	validator *validator.Validator
}

func NewAuthHandler(session services.SessionService, validator *validator.Validator, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		session:     session,
		validator:   validator,
	}
}

// SignUp registers a student account and signs it in.
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	identity, err := h.session.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, identity)
}

// SignIn authenticates a student and establishes the session.
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req CredentialsRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	identity, err := h.session.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, identity)
}

// SignInAsAdmin establishes the synthesized admin session.
// @Router /auth/admin [post]
func (h *AuthHandler) SignInAsAdmin(c *gin.Context) {
	identity, err := h.session.SignInAsAdmin(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, identity)
}

// SignOut clears the session.
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.session.SignOut(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CurrentSession reports the signed-in identity, 204 when signed out.
// @Router /auth/session [get]
func (h *AuthHandler) CurrentSession(c *gin.Context) {
	identity := h.session.Current()
	if identity == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, identity)
}
