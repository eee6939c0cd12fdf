package handler

import (
	"errors"

	"tunitech/internal/delivery/http/dto"
	"tunitech/internal/delivery/http/middleware"
	"tunitech/internal/pkg/response"
	"tunitech/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

type createSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type createIndustryRequest struct {
	Name string `json:"name"`
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.ListSkills)
	r.Post("/skills", h.CreateSkill)
	r.Get("/industries", h.ListIndustries)
	r.Post("/industries", h.CreateIndustry)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	skills, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkills(skills))
}

func (h *CatalogHandler) CreateSkill(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	s, err := h.uc.CreateSkill(c.Context(), req.Name, req.Category)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category})
}

func (h *CatalogHandler) ListIndustries(c fiber.Ctx) error {
	inds, err := h.uc.ListIndustries(c.Context())
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromIndustries(inds))
}

func (h *CatalogHandler) CreateIndustry(c fiber.Ctx) error {
	var req createIndustryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in, err := h.uc.CreateIndustry(c.Context(), req.Name)
	if err != nil {
		return mapCatalogUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.IndustryResponse{ID: in.ID, Name: in.Name})
}

func mapCatalogUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
