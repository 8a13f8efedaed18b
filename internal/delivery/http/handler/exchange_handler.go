package handler

import (
	"errors"
	"strings"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ExchangeHandler struct {
	uc usecase.ExchangeUsecase
}

type createExchangeRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id"`
	TeachSkill string    `json:"teach_skill"`
	LearnSkill string    `json:"learn_skill"`
}

// respondExchangeRequest accepts the documented `status` key; `decision`
// is kept as an alias for older clients.
type respondExchangeRequest struct {
	Status   string `json:"status"`
	Decision string `json:"decision"`
}

func (r respondExchangeRequest) decision() string {
	if strings.TrimSpace(r.Status) != "" {
		return r.Status
	}
	return r.Decision
}

func NewExchangeHandler(uc usecase.ExchangeUsecase) *ExchangeHandler {
	return &ExchangeHandler{uc: uc}
}

func (h *ExchangeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/sent", h.ListSent)
	r.Get("/received", h.ListReceived)
	r.Patch("/:id", h.Respond)
}

func (h *ExchangeHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createExchangeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.Create(c.Context(), userID, req.ReceiverID, req.TeachSkill, req.LearnSkill)
	if err != nil {
		return mapExchangeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewExchangeResponse(created))
}

func (h *ExchangeHandler) ListSent(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	entries, err := h.uc.ListSent(c.Context(), userID)
	if err != nil {
		return mapExchangeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewExchangeListItemResponses(entries))
}

func (h *ExchangeHandler) ListReceived(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	entries, err := h.uc.ListReceived(c.Context(), userID)
	if err != nil {
		return mapExchangeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewExchangeListItemResponses(entries))
}

func (h *ExchangeHandler) Respond(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request id", nil, err)
	}

	var req respondExchangeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.Respond(c.Context(), requestID, userID, req.decision())
	if err != nil {
		return mapExchangeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewExchangeResponse(updated))
}

func mapExchangeUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSelfRequest), errors.Is(err, usecase.ErrInvalidDecision), errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrDuplicatePending):
		return middleware.NewAppError(fiber.StatusConflict, "An identical request is already pending", nil, err)
	case errors.Is(err, usecase.ErrAlreadyDecided):
		return middleware.NewAppError(fiber.StatusConflict, "Request already decided", nil, err)
	case errors.Is(err, usecase.ErrExchangeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Exchange request not found", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrNotReceiver):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the receiver may respond", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
