package admin

import (
	"errors"
	"time"

	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_LIST_USERS")
	}
	return helpers.JSONSuccess(c, "Users listed", users)
}

func ApproveUser(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*helpers.TokenClaims)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "INVALID_SESSION")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_USER_ID")
	}

	now := time.Now()
	res := database.DB.Model(&models.User{}).Where("id = ?", id).Updates(map[string]any{
		"aprovado":     true,
		"aprovado_em":  &now,
		"aprovado_por": claims.UserID,
	})
	if res.Error != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_APPROVE_USER")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "USER_NOT_FOUND")
	}
	return helpers.JSONSuccess(c, "User approved", nil)
}

func RejectUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_USER_ID")
	}

	res := database.DB.Model(&models.User{}).Where("id = ?", id).Update("aprovado", false)
	if res.Error != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_REJECT_USER")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "USER_NOT_FOUND")
	}
	return helpers.JSONSuccess(c, "User rejected", nil)
}

type UpdateUserRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Plano string `json:"plano"`
}

func UpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_USER_ID")
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "USER_NOT_FOUND")
		}
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_UPDATE_USER")
	}

	if err := database.DB.Model(&user).Updates(map[string]any{
		"nome":  req.Nome,
		"email": req.Email,
		"plano": req.Plano,
	}).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_UPDATE_USER")
	}
	return helpers.JSONSuccess(c, "User updated", nil)
}

func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helpers.JSONError(c, "INVALID_USER_ID")
	}

	res := database.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_DELETE_USER")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONErrorStatus(c, fiber.StatusNotFound, "USER_NOT_FOUND")
	}
	return helpers.JSONSuccess(c, "User deleted", nil)
}
