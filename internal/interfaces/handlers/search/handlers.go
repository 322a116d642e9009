package search

import (
	searchsvc "casavia-backend/internal/application/search"
	"casavia-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *searchsvc.Service
}

// POST /api/v1/search/search-listings — criteria in body, results sorted by price ascending.
func (h *Handlers) SearchListings(c *fiber.Ctx) error {
	var req searchsvc.CriteriaInput
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", 400, nil)
	}
	listings, err := h.Service.Search(c.Context(), req)
	if err != nil {
		return response.DomainError(c, err)
	}
	return response.Success(c, "Listings fetched successfully", listings, nil)
}

// GET /api/v1/search/available-listings
func (h *Handlers) AvailableListings(c *fiber.Ctx) error {
	listings, err := h.Service.Available(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", 500, nil)
	}
	return response.Success(c, "Available listings fetched successfully", listings, nil)
}
