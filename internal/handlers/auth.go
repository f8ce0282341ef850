package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/carelog-dev/carelog/db"
	"github.com/carelog-dev/carelog/internal/apperr"
	"github.com/carelog-dev/carelog/internal/auth"
	"github.com/carelog-dev/carelog/internal/models"
	"github.com/carelog-dev/carelog/internal/types"
	"github.com/carelog-dev/carelog/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=15"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates a new doctor or patient account. The role is fixed here
// for the lifetime of the user.
func Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest(""))
		return
	}

	role := models.Role(req.Role)

	if !role.Valid() {
		respondError(ctx, apperr.BadRequest("role must be either 'Doctor' or 'Patient'"))
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)

	if err != nil {
		respondError(ctx, apperr.Internal(err))
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Role:         role,
		PasswordHash: passwordHash,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if db.IsDuplicateKey(err) {
			respondError(ctx, apperr.Conflict("Sorry, this email is already taken"))
			return
		}
		respondError(ctx, apperr.Internal(err))
		return
	}

	respond(ctx, http.StatusCreated, "User created successfully", types.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

// Login exchanges credentials for a bearer token. Unknown email and wrong
// password are deliberately indistinguishable.
func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		respondError(ctx, apperr.BadRequest(""))
		return
	}

	var user models.User

	err := db.DB.Where("email = ?", req.Email).First(&user).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Database error when fetching user: %v", err)
			respondError(ctx, apperr.Internal(err))
			return
		}
		respondError(ctx, apperr.Unauthorized())
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondError(ctx, apperr.Unauthorized())
		return
	}

	token, expiresAt, err := auth.GenerateJWT(user)

	if err != nil {
		respondError(ctx, apperr.Internal(err))
		return
	}

	respond(ctx, http.StatusOK, "Logged in successfully", types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Expires:     expiresAt,
	})
}

// Me returns the authenticated user.
func Me(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)

	if err != nil {
		respondError(ctx, apperr.Unauthenticated())
		return
	}

	respond(ctx, http.StatusOK, "User retrieved successfully", types.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}
