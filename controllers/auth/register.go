package auth

import (
	"errors"
	"strings"

	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nome     string `json:"nome"`
}

// Register creates a user pending admin approval. Duplicate emails are
// caught on the insert itself via the unique index, so two concurrent
// registrations of the same email cannot both pass a lookup.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return helpers.JSONError(c, "EMAIL_AND_PASSWORD_REQUIRED")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_HASH_PASSWORD")
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Nome:         req.Nome,
		Plano:        "free",
	}
	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.JSONError(c, "EMAIL_ALREADY_EXISTS")
		}
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_REGISTER_USER")
	}

	return helpers.JSONSuccess(c, "User created, pending approval", fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}
