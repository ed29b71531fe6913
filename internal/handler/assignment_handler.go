package handler

import (
	"quiz-assign/internal/domain"
	"quiz-assign/internal/dto"
	"quiz-assign/internal/logger"
	"quiz-assign/internal/middleware"
	"quiz-assign/internal/service"
	"quiz-assign/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AssignmentHandler handles the assign-quiz HTTP requests
type AssignmentHandler struct {
	service   service.AssignmentService
	validator *validation.Validator
}

// NewAssignmentHandler creates a new AssignmentHandler instance
func NewAssignmentHandler(service service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// sessionID reads and validates the :id path parameter.
func (h *AssignmentHandler) sessionID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if errs := h.validator.ValidateSessionID(id); len(errs) > 0 {
		return "", errs
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logger.Get().Warn("Failed to parse request body", zap.String("path", c.Path()), zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}
	return nil
}

// GetTemplates godoc
// @Summary List quiz templates
// @Description Returns the template catalog together with the programme and branch options
// @Tags templates
// @Produce json
// @Success 200 {object} dto.TemplatesResponse
// @Router /templates [get]
func (h *AssignmentHandler) GetTemplates(c *fiber.Ctx) error {
	return c.JSON(h.service.Templates())
}

// OpenSession godoc
// @Summary Open an assignment session
// @Description Starts a new assign-quiz session with an empty draft
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} dto.AssignmentSessionResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /assignments [post]
func (h *AssignmentHandler) OpenSession(c *fiber.Ctx) error {
	resp, err := h.service.OpenSession(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession godoc
// @Summary Get an assignment session
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.AssignmentSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetSession(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetSession(c.Context(), id, middleware.ActorFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectTemplate godoc
// @Summary Select a template
// @Description Copies the template's title, description and time limit into the draft
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param body body dto.SelectTemplateRequest true "Template index"
// @Success 200 {object} dto.AssignmentSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assignments/{id}/template [put]
func (h *AssignmentHandler) SelectTemplate(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}
	var req dto.SelectTemplateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSelectTemplateRequest(&req, h.service.TemplateCount()); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SelectTemplate(c.Context(), id, middleware.ActorFromCtx(c), *req.Index)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateDetails godoc
// @Summary Edit quiz details
// @Description Updates title, description, time limit and schedule. Absent fields are unchanged.
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param body body dto.UpdateDetailsRequest true "Details"
// @Success 200 {object} dto.AssignmentSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assignments/{id}/details [patch]
func (h *AssignmentHandler) UpdateDetails(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateDetailsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateUpdateDetailsRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateDetails(c.Context(), id, middleware.ActorFromCtx(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SetAudience godoc
// @Summary Choose the target audience
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param body body dto.SetAudienceRequest true "Audience codes"
// @Success 200 {object} dto.AssignmentSessionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assignments/{id}/audience [put]
func (h *AssignmentHandler) SetAudience(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}
	var req dto.SetAudienceRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if errs := h.validator.ValidateSetAudienceRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SetAudience(c.Context(), id, middleware.ActorFromCtx(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Submit godoc
// @Summary Assign the quiz
// @Description Creates the quiz from the selected template and the draft. Without a selected template nothing is created.
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SubmitAssignmentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /assignments/{id}/submit [post]
func (h *AssignmentHandler) Submit(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}

	refresh := false
	resp, err := h.service.Submit(c.Context(), id, middleware.ActorFromCtx(c), func() { refresh = true })
	if err != nil {
		return err
	}
	resp.RefreshQuizzes = refresh
	return c.JSON(resp)
}

// CloseSession godoc
// @Summary Close an assignment session
// @Description Discards the draft
// @Tags assignments
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) CloseSession(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return err
	}
	if err := h.service.CloseSession(c.Context(), id, middleware.ActorFromCtx(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListQuizzes godoc
// @Summary List assigned quizzes
// @Description Returns the teacher's quizzes, newest first
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.QuizListResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *AssignmentHandler) ListQuizzes(c *fiber.Ctx) error {
	resp, err := h.service.ListQuizzes(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListNotifications godoc
// @Summary List notifications
// @Description Returns the teacher's most recent notifications, newest first
// @Tags notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NotificationListResponse
// @Router /notifications [get]
func (h *AssignmentHandler) ListNotifications(c *fiber.Ctx) error {
	resp, err := h.service.ListNotifications(c.Context(), middleware.ActorFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
