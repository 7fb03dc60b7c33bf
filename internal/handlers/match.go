package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pitchlab/matchdb/internal/services"
	"github.com/pitchlab/matchdb/internal/types"
	"github.com/pitchlab/matchdb/internal/utils"
	"gorm.io/gorm"
)

// MatchHandler handles the /api/matches routes
type MatchHandler struct {
	DB *gorm.DB
}

// getUserID extracts the authenticated user ID from context (set by auth middleware)
func getUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user not found in context")
	}
	return userID, nil
}

// GetMatch handles GET /api/matches/:matchId
// @Summary Get a match
// @Description Get a single match owned by the authenticated user
// @Tags Matches
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Success 200 {object} types.Match
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /matches/{matchId} [get]
func (h *MatchHandler) GetMatch(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "matches.authorization")
	}

	matchID := c.Params("matchId")

	stored, err := services.GetMatch(h.DB, userID, matchID)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Match '%s' not found", matchID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getMatch")
	}

	match, err := types.ToPublic(stored)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getMatch")
	}

	return c.Status(fiber.StatusOK).JSON(match)
}

// ListMatches handles GET /api/matches
// @Summary List matches
// @Description List all matches owned by the authenticated user
// @Tags Matches
// @Accept json
// @Produce json
// @Success 200 {array} types.Match
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "matches.authorization")
	}

	stored, err := services.ListMatches(h.DB, userID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listMatches")
	}

	matches := make([]types.Match, 0, len(stored))
	for i := range stored {
		match, err := types.ToPublic(&stored[i])
		if err != nil {
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listMatches")
		}
		matches = append(matches, *match)
	}

	return c.Status(fiber.StatusOK).JSON(matches)
}

// CreateMatch handles POST /api/matches
// @Summary Create a match
// @Description Create a new match for the authenticated user. The match identifier is caller-supplied and unique per user.
// @Tags Matches
// @Accept json
// @Produce json
// @Param body body types.Match true "Match to create"
// @Success 201 {object} types.Match
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "matches.authorization")
	}

	var body types.Match
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	stored, err := types.ToStored(&body, userID)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			return utils.ValidationErrorResponse(c, verr.Error())
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createMatch")
	}

	created, err := services.CreateMatch(h.DB, stored)
	if err != nil {
		if errors.Is(err, services.ErrMatchExists) {
			return utils.ConflictResponse(c, fmt.Sprintf("Match '%s' already exists", body.MatchID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createMatch")
	}

	match, err := types.ToPublic(created)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createMatch")
	}

	return c.Status(fiber.StatusCreated).JSON(match)
}

// UpdateMatch handles PUT /api/matches/:matchId
// @Summary Replace a match
// @Description Replace all mutable fields of an existing match. Fails if the match does not exist; never creates.
// @Tags Matches
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Param body body types.Match true "Replacement payload"
// @Success 200 {object} types.Match
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /matches/{matchId} [put]
func (h *MatchHandler) UpdateMatch(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "matches.authorization")
	}

	matchID := c.Params("matchId")

	var body types.Match
	if err := c.BodyParser(&body); err != nil {
		return utils.ValidationErrorResponse(c, "Invalid input")
	}

	// The identifier is immutable; a body that names a different one is a
	// malformed request, not a rename.
	if body.MatchID == "" {
		body.MatchID = matchID
	}
	if body.MatchID != matchID {
		return utils.ValidationErrorResponse(c, "match_id in body does not match path")
	}

	replacement, err := types.ToStored(&body, userID)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			return utils.ValidationErrorResponse(c, verr.Error())
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateMatch")
	}

	updated, err := services.UpdateMatch(h.DB, userID, matchID, replacement)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Match '%s' not found", matchID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateMatch")
	}

	match, err := types.ToPublic(updated)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateMatch")
	}

	return c.Status(fiber.StatusOK).JSON(match)
}

// DeleteMatch handles DELETE /api/matches/:matchId
// @Summary Delete a match
// @Description Permanently delete a match owned by the authenticated user
// @Tags Matches
// @Accept json
// @Produce json
// @Param matchId path string true "Match ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security BearerAuth
// @Router /matches/{matchId} [delete]
func (h *MatchHandler) DeleteMatch(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusUnauthorized, "matches.authorization")
	}

	matchID := c.Params("matchId")

	if err := services.DeleteMatch(h.DB, userID, matchID); err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Match '%s' not found", matchID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteMatch")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
