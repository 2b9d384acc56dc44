package surebets

import (
	"github.com/Avidasevi/surebetsistem/helpers"
	"github.com/Avidasevi/surebetsistem/services"
	"github.com/Avidasevi/surebetsistem/surebet"

	"github.com/gofiber/fiber/v2"
)

// ListSurebets serves the latest scan snapshot. The scan itself runs on
// the background schedule; this endpoint never hits the odds provider.
func ListSurebets(c *fiber.Ctx) error {
	found := services.LatestSurebets(c.Context())
	if found == nil {
		found = []surebet.Surebet{}
	}
	return helpers.JSONSuccess(c, "Surebets listed", found)
}
