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

type DeveloperHandler struct {
	uc usecase.DeveloperUsecase
}

type onboardDeveloperRequest struct {
	FullName        string   `json:"full_name"`
	ExperienceLevel string   `json:"experience_level"`
	YearsExperience int      `json:"years_experience"`
	TechnicalSkills []string `json:"technical_skills"`
	HourlyRate      *int     `json:"hourly_rate"`
}

type updateDeveloperRequest struct {
	FullName         string   `json:"full_name"`
	ExperienceLevel  string   `json:"experience_level"`
	YearsExperience  int      `json:"years_experience"`
	TechnicalSkills  []string `json:"technical_skills"`
	HourlyRate       *int     `json:"hourly_rate"`
	AvailableForWork bool     `json:"available_for_work"`
}

type addDeveloperSkillRequest struct {
	SkillID         string `json:"skill_id"`
	Proficiency     int    `json:"proficiency"`
	YearsExperience int    `json:"years_experience"`
}

type addDeveloperIndustryRequest struct {
	IndustryID      string `json:"industry_id"`
	YearsExperience int    `json:"years_experience"`
}

func NewDeveloperHandler(uc usecase.DeveloperUsecase) *DeveloperHandler {
	return &DeveloperHandler{uc: uc}
}

func (h *DeveloperHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("", h.Onboard)
	r.Get("/me", h.GetMyProfile)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)

	r.Post("/:id/skills", h.AddSkill)
	r.Get("/:id/skills", h.ListSkills)
	r.Delete("/:id/skills/:skillId", h.RemoveSkill)

	r.Post("/:id/industries", h.AddIndustry)
	r.Get("/:id/industries", h.ListIndustries)
}

func (h *DeveloperHandler) Onboard(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req onboardDeveloperRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	d, err := h.uc.Onboard(c.Context(), usecase.OnboardDeveloperInput{
		UserID:          userID,
		FullName:        req.FullName,
		ExperienceLevel: req.ExperienceLevel,
		YearsExperience: req.YearsExperience,
		TechnicalSkills: req.TechnicalSkills,
		HourlyRate:      req.HourlyRate,
	})
	if err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromDeveloper(d))
}

func (h *DeveloperHandler) GetMyProfile(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	d, err := h.uc.GetByUserID(c.Context(), userID)
	if err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromDeveloper(d))
}

func (h *DeveloperHandler) GetByID(c fiber.Ctx) error {
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	d, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromDeveloper(d))
}

func (h *DeveloperHandler) Update(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	var req updateDeveloperRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	d, err := h.uc.UpdateProfile(c.Context(), userID, id, usecase.UpdateDeveloperInput{
		FullName:         req.FullName,
		ExperienceLevel:  req.ExperienceLevel,
		YearsExperience:  req.YearsExperience,
		TechnicalSkills:  req.TechnicalSkills,
		HourlyRate:       req.HourlyRate,
		AvailableForWork: req.AvailableForWork,
	})
	if err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromDeveloper(d))
}

func (h *DeveloperHandler) AddSkill(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	var req addDeveloperSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	skillID, err := uuid.Parse(req.SkillID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill_id", nil, err)
	}

	if err := h.uc.AddSkill(c.Context(), userID, id, usecase.AddDeveloperSkillInput{
		SkillID:         skillID,
		Proficiency:     req.Proficiency,
		YearsExperience: req.YearsExperience,
	}); err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}

func (h *DeveloperHandler) RemoveSkill(c fiber.Ctx) error {
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

	if err := h.uc.RemoveSkill(c.Context(), userID, id, skillID); err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *DeveloperHandler) ListSkills(c fiber.Ctx) error {
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	skills, err := h.uc.ListSkills(c.Context(), id)
	if err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromDeveloperSkills(skills))
}

func (h *DeveloperHandler) AddIndustry(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	var req addDeveloperIndustryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	industryID, err := uuid.Parse(req.IndustryID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid industry_id", nil, err)
	}

	if err := h.uc.AddIndustry(c.Context(), userID, id, usecase.AddDeveloperIndustryInput{
		IndustryID:      industryID,
		YearsExperience: req.YearsExperience,
	}); err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}

func (h *DeveloperHandler) ListIndustries(c fiber.Ctx) error {
	id, err := uuidFromPath(c, "id")
	if err != nil {
		return err
	}

	inds, err := h.uc.ListIndustries(c.Context(), id)
	if err != nil {
		return mapDeveloperUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromDeveloperIndustries(inds))
}

func mapDeveloperUsecaseError(err error) error {
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
