package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"weather-search/internal/services/weather"
)

const sessionCookie = "sid"

// SearchRequest is the body of POST /api/v1/search.
type SearchRequest struct {
	City string `json:"city" example:"Paris"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required field: city"`
}

// session resolves the caller's session from the cookie, issuing a new one
// when the cookie is absent or the session expired.
func (r *routes) session(c *fiber.Ctx) *weather.Session {
	sess, created := r.store.GetOrCreate(c.Cookies(sessionCookie))
	if created {
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID(),
			Path:     "/",
			HTTPOnly: true,
			Secure:   r.secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sess
}

func (r *routes) handleIndex(c *fiber.Ctx) error {
	sess := r.session(c)

	page := BuildPage(r.title, sess.Snapshot(), time.Now(), r.loc)

	return c.Render("index", page)
}

func (r *routes) handleSubmit(c *fiber.Ctx) error {
	sess := r.session(c)

	query := c.FormValue("query")
	r.l.Debug("search submitted", map[string]any{"session": sess.ID(), "query": query})
	sess.Submit(query)

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (r *routes) handleToggleUnit(c *fiber.Ctx) error {
	r.session(c).ToggleUnit()

	return c.Redirect("/", fiber.StatusSeeOther)
}

// GetState godoc
// @Summary Get the session state
// @Description Returns the current conditions, forecast, recent searches and unit of the caller's session
// @Tags Weather
// @Produce json
// @Success 200 {object} weather.Snapshot "Session snapshot"
// @Router /api/v1/state [get]
func (r *routes) handleState(c *fiber.Ctx) error {
	return c.JSON(r.session(c).Snapshot())
}

// Search godoc
// @Summary Search a city
// @Description Runs a search to completion and returns the resulting session state
// @Tags Weather
// @Accept json
// @Produce json
// @Param request body SearchRequest true "City to search"
// @Success 200 {object} weather.Snapshot "Search succeeded"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 404 {object} weather.Snapshot "City not found"
// @Failure 409 {object} ErrorResponse "A newer search replaced this one"
// @Router /api/v1/search [post]
// @Example {curl} Example usage:
//
//	curl -X POST "http://localhost:8080/api/v1/search" -H "Content-Type: application/json" -d '{"city":"Paris"}'
func (r *routes) handleSearch(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.City) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required field: city",
		})
	}

	sess := r.session(c)

	err := sess.Search(c.UserContext(), req.City)
	switch {
	case errors.Is(err, weather.ErrSuperseded):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error: "Search was superseded by a newer one",
		})
	case errors.Is(err, weather.ErrCityNotFound):
		return c.Status(fiber.StatusNotFound).JSON(sess.Snapshot())
	case err != nil:
		r.l.Error(err, map[string]any{"session": sess.ID(), "city": req.City})

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}

	return c.JSON(sess.Snapshot())
}
