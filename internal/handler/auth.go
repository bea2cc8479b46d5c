package handler

import (
	"errors"
	"net/http"
	"strings"

	"training-tracker/internal/auth"
	"training-tracker/internal/middleware"
	"training-tracker/internal/models"
	"training-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler serves registration, login and token re-issuance.
type AuthHandler struct {
	DB         *gorm.DB
	Tokens     *auth.Service
	BcryptCost int
}

func NewAuthHandler(db *gorm.DB, tokens *auth.Service, bcryptCost int) *AuthHandler {
	return &AuthHandler{
		DB:         db,
		Tokens:     tokens,
		BcryptCost: bcryptCost,
	}
}

// ---------- register ----------

type registerReq struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// Register creates a new user. The password is stored as a bcrypt hash
// and never leaves the server; the response carries the user record with
// the hash field redacted.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "bad request")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := util.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ---------- login ----------

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials and answers with a fresh bearer token. Unknown
// email and wrong password produce the same response so callers cannot
// probe which precondition failed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusForbidden, util.CodeAuth, "bad request")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusForbidden, util.CodeAuth, "invalid email or password")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		}
		return
	}

	if !util.CheckPassword(req.Password, user.PasswordHash) {
		util.Error(c, http.StatusForbidden, util.CodeAuth, "invalid email or password")
		return
	}

	token, err := h.Tokens.Issue(identityFor(&user))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	// the body is the JSON-encoded token string itself
	c.JSON(http.StatusOK, token)
}

// ---------- verify ----------

type verifyReq struct {
	Email string `json:"email" binding:"required"`
	// tolerated but ignored; the new token comes from the verified identity
	Password string `json:"password"`
}

// Verify re-issues a token for the already-authenticated caller, resetting
// the expiration window. The identity comes from the presented token, not
// from the request body.
func (h *AuthHandler) Verify(c *gin.Context) {
	id, ok := middleware.Identity(c)
	if !ok {
		util.Error(c, http.StatusForbidden, util.CodeAuth, "not authenticated")
		return
	}

	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusForbidden, util.CodeAuth, "bad request")
		return
	}

	token, err := h.Tokens.Issue(*id)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal server error")
		return
	}

	c.JSON(http.StatusOK, token)
}

func identityFor(u *models.User) auth.Identity {
	return auth.Identity{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
