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

type RequirementHandler struct {
	uc usecase.RequirementUsecase
}

type createRequirementRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ExperienceLevel string `json:"experience_level"`
	TechnicalSkills string `json:"technical_skills"`
	EmploymentType  string `json:"employment_type"`
}

type addSkillRequirementRequest struct {
	SkillID      string `json:"skill_id"`
	Importance   int    `json:"importance"`
	MinimumYears int    `json:"minimum_years"`
}

type addIndustryRequirementRequest struct {
	IndustryID string `json:"industry_id"`
	Required   bool   `json:"required"`
}

func NewRequirementHandler(uc usecase.RequirementUsecase) *RequirementHandler {
	return &RequirementHandler{uc: uc}
}

func (h *RequirementHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("", h.Create)
	r.Get("", h.ListActive)
	r.Get("/mine", h.ListMine)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Deactivate)

	r.Post("/:id/skills", h.AddSkillRequirement)
	r.Get("/:id/skills", h.ListSkillRequirements)
	r.Delete("/:id/skills/:skillId", h.RemoveSkillRequirement)

	r.Post("/:id/industries", h.AddIndustryRequirement)
	r.Get("/:id/industries", h.ListIndustryRequirements)
}

func (h *RequirementHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createRequirementRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	pr, err := h.uc.Create(c.Context(), usecase.CreateRequirementInput{
		CustomerID:      userID,
		Title:           req.Title,
		Description:     req.Description,
		ExperienceLevel: req.ExperienceLevel,
		TechnicalSkills: req.TechnicalSkills,
		EmploymentType:  req.EmploymentType,
	})
	if err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromRequirement(pr))
}

func (h *RequirementHandler) GetByID(c fiber.Ctx) error {
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	pr, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRequirement(pr))
}

func (h *RequirementHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	var req createRequirementRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	pr, err := h.uc.Update(c.Context(), userID, id, usecase.UpdateRequirementInput{
		Title:           req.Title,
		Description:     req.Description,
		ExperienceLevel: req.ExperienceLevel,
		TechnicalSkills: req.TechnicalSkills,
		EmploymentType:  req.EmploymentType,
	})
	if err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRequirement(pr))
}

func (h *RequirementHandler) Deactivate(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Context(), userID, id); err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *RequirementHandler) ListMine(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	prs, err := h.uc.ListByCustomer(c.Context(), userID)
	if err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRequirements(prs))
}

// ListActive serves the browse surface for developers looking for projects.
func (h *RequirementHandler) ListActive(c fiber.Ctx) error {
	prs, err := h.uc.ListActive(c.Context())
	if err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRequirements(prs))
}

func (h *RequirementHandler) AddSkillRequirement(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	var req addSkillRequirementRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	skillID, err := uuid.Parse(req.SkillID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill_id", nil, err)
	}

	if err := h.uc.AddSkillRequirement(c.Context(), userID, id, usecase.AddSkillRequirementInput{
		SkillID:      skillID,
		Importance:   req.Importance,
		MinimumYears: req.MinimumYears,
	}); err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}

func (h *RequirementHandler) RemoveSkillRequirement(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}
	skillID, err := uuidFromPath(c, "skillId")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveSkillRequirement(c.Context(), userID, id, skillID); err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *RequirementHandler) ListSkillRequirements(c fiber.Ctx) error {
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	srs, err := h.uc.ListSkillRequirements(c.Context(), id)
	if err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromSkillRequirements(srs))
}

func (h *RequirementHandler) AddIndustryRequirement(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	var req addIndustryRequirementRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	industryID, err := uuid.Parse(req.IndustryID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid industry_id", nil, err)
	}

	if err := h.uc.AddIndustryRequirement(c.Context(), userID, id, usecase.AddIndustryRequirementInput{
		IndustryID: industryID,
		Required:   req.Required,
	}); err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}

func (h *RequirementHandler) ListIndustryRequirements(c fiber.Ctx) error {
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	irs, err := h.uc.ListIndustryRequirements(c.Context(), id)
	if err != nil {
		return mapRequirementUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromIndustryRequirements(irs))
}

func mapRequirementUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrDuplicateEntry):
		return middleware.NewAppError(fiber.StatusConflict, "Already exists", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
