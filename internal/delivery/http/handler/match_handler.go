package handler

import (
	"errors"

	"tunitech/internal/delivery/http/dto"
	"tunitech/internal/delivery/http/middleware"
	"tunitech/internal/pkg/response"
	"tunitech/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	lifecycle usecase.MatchLifecycleUsecase
	queries   usecase.MatchQueryUsecase
}

type createMatchRequest struct {
	ProjectRequirementID string `json:"project_requirement_id"`
	DeveloperID          string `json:"developer_id"`
}

func NewMatchHandler(lifecycle usecase.MatchLifecycleUsecase, queries usecase.MatchQueryUsecase) *MatchHandler {
	return &MatchHandler{lifecycle: lifecycle, queries: queries}
}

// Create pairs a requirement with a developer and stores the computed score.
func (h *MatchHandler) Create(c fiber.Ctx) error {
	reqID, devID, err := parseCreateMatchRequest(c)
	if err != nil {
		return err
	}

	m, err := h.lifecycle.CreateSystemMatch(c.Context(), reqID, devID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromMatch(m))
}

// Apply records a developer proactively applying to a requirement.
func (h *MatchHandler) Apply(c fiber.Ctx) error {
	reqID, devID, err := parseCreateMatchRequest(c)
	if err != nil {
		return err
	}

	m, err := h.lifecycle.CreateDeveloperInitiatedMatch(c.Context(), reqID, devID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromMatch(m))
}

func (h *MatchHandler) ExpressInterest(c fiber.Ctx) error {
	matchID, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	m, err := h.lifecycle.CustomerExpressInterest(c.Context(), matchID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatch(m))
}

func (h *MatchHandler) Approve(c fiber.Ctx) error {
	matchID, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	m, err := h.lifecycle.DeveloperApprove(c.Context(), matchID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatch(m))
}

func (h *MatchHandler) Reject(c fiber.Ctx) error {
	matchID, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	m, err := h.lifecycle.DeveloperReject(c.Context(), matchID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatch(m))
}

func (h *MatchHandler) Hire(c fiber.Ctx) error {
	matchID, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	m, err := h.lifecycle.MarkHired(c.Context(), matchID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatch(m))
}

// ListForRequirement serves a requirement's matches ordered by score.
func (h *MatchHandler) ListForRequirement(c fiber.Ctx) error {
	reqID, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	ms, err := h.queries.ListForRequirement(c.Context(), reqID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatches(ms))
}

func (h *MatchHandler) ListForDeveloper(c fiber.Ctx) error {
	devID, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	ms, err := h.queries.ListForDeveloper(c.Context(), devID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatches(ms))
}

// GetForPair serves the match record for one requirement and developer.
func (h *MatchHandler) GetForPair(c fiber.Ctx) error {
	reqID, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}
	devID, err := uuidFromPath(c, "developerId")
	if err != nil {
		return err
	}

	m, err := h.queries.GetForPair(c.Context(), reqID, devID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatch(m))
}

// BrowseDevelopers scores every available developer against the requirement
// without persisting anything.
func (h *MatchHandler) BrowseDevelopers(c fiber.Ctx) error {
	reqID, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	devs, err := h.queries.BrowseDevelopers(c.Context(), reqID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromScoredDevelopers(devs))
}

func parseCreateMatchRequest(c fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	var req createMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	reqID, err := uuid.Parse(req.ProjectRequirementID)
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid project_requirement_id", nil, err)
	}
	devID, err := uuid.Parse(req.DeveloperID)
	if err != nil {
		return uuid.Nil, uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid developer_id", nil, err)
	}
	return reqID, devID, nil
}

func uuidFromPath(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrDuplicateMatch):
		return middleware.NewAppError(fiber.StatusConflict, "Match already exists", nil, err)
	case errors.Is(err, usecase.ErrMatchClosed):
		return middleware.NewAppError(fiber.StatusConflict, "Match is closed", nil, err)
	case errors.Is(err, usecase.ErrNotMutual):
		return middleware.NewAppError(fiber.StatusConflict, "Match is not mutual", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrStore):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
