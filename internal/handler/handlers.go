package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Cirillio/DonationApp/internal/domain"
	"github.com/Cirillio/DonationApp/internal/service"
	"github.com/Cirillio/DonationApp/internal/wizard"
	"github.com/Cirillio/DonationApp/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

// Обертка для swagger ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

// @title DonationApp Api
// @version 1

// DonationService — операции мастера пожертвований, доступные HTTP-слою.
type DonationService interface {
	State(ctx context.Context, id string) (service.StateView, error)
	UpdateBlank(ctx context.Context, id string, values domain.BlankFormValues) (service.FormStatus, error)
	UpdatePayment(ctx context.Context, id string, values domain.PaymentFormValues) (service.FormStatus, error)
	ClearFieldError(ctx context.Context, id string, form wizard.FormName, field string) error
	NextStep(ctx context.Context, id string) (service.StateView, error)
	PrevStep(ctx context.Context, id string) (service.StateView, error)
	GoToStep(ctx context.Context, id string, step int) (service.StateView, error)
	Finish(ctx context.Context, id string, result *domain.PaymentResult) (service.StateView, error)
	CompletePayment(ctx context.Context, id string, result domain.PaymentResult) error
	Reset(ctx context.Context, id string) (service.StateView, error)
	InitStatus(ctx context.Context, id string, token domain.DonationStatus) (wizard.InitStatusResult, error)
	HasUnsavedData(ctx context.Context, id string) (bool, error)
	RequestLeave(ctx context.Context, id string, target string) (service.LeaveDecision, error)
	ConfirmLeave(ctx context.Context, id string) error
	CancelLeave(ctx context.Context, id string) error
}

type Renderer interface {
	RenderHome(http.ResponseWriter)
}

type Handler struct {
	donations DonationService
	renderer  Renderer
	logger    *slog.Logger
}

func NewHandler(logger *slog.Logger, donations DonationService, renderer Renderer) *Handler {
	return &Handler{
		donations: donations,
		renderer:  renderer,
		logger:    logger,
	}
}

// ShowHomepage отображает домашнюю страницу
func (h *Handler) ShowHomepage(c *gin.Context) {
	h.renderer.RenderHome(c.Writer)
}

// GetDonation godoc
// @Summary Состояние мастера пожертвования
// @Description Синхронизирует шаг с query-параметром status и возвращает состояние сеанса
// @Param status query string false "Токен шага (blank|payment|result)"
// @Param payment-token query string false "Токен платежа от платёжного контура"
// @Success 200 {object} service.StateView
// @Failure 302 "Неизвестный status — redirect на канонический стартовый"
// @Router /donation [get]
func (h *Handler) GetDonation(c *gin.Context) {
	id := sessionID(c)
	ctx := c.Request.Context()

	// Наличие платёжного токена само по себе ведёт на шаг результата.
	// TODO: проверять токен запросом к платёжному контуру, когда тот появится.
	if token := c.Query("payment-token"); token != "" {
		state, err := h.donations.GoToStep(ctx, id, domain.StepResult)
		if err != nil {
			h.internalError(c, "failed to apply payment token", err)
			return
		}
		c.JSON(http.StatusOK, state)
		return
	}

	status := domain.DonationStatus(c.Query("status"))
	result, err := h.donations.InitStatus(ctx, id, status)
	if err != nil {
		h.internalError(c, "failed to init status", err)
		return
	}
	if !result.Success {
		h.redirectToStatus(c, result.Query.Status)
		return
	}

	state, err := h.donations.State(ctx, id)
	if err != nil {
		h.internalError(c, "failed to read state", err)
		return
	}

	// Deep-link на шаг оплаты при невалидной анкете возвращаем на старт.
	if state.CurrentStep == domain.StepPayment && !state.StepsValidity[domain.StepBlank] {
		if _, err := h.donations.GoToStep(ctx, id, domain.StepBlank); err != nil {
			h.internalError(c, "failed to guard payment step", err)
			return
		}
		h.redirectToStatus(c, domain.StartStatus)
		return
	}

	c.JSON(http.StatusOK, state)
}

// redirectToStatus нормализует URL до заданного токена статуса.
func (h *Handler) redirectToStatus(c *gin.Context, status domain.DonationStatus) {
	target := url.URL{Path: c.Request.URL.Path}
	q := target.Query()
	q.Set("status", string(status))
	target.RawQuery = q.Encode()
	c.Redirect(http.StatusFound, target.String())
}

// UpdateBlank godoc
// @Summary Обновить анкету
// @Description Применяет значения анкеты и валидирует её целиком
// @Accept json
// @Produce json
// @Param blank body domain.BlankFormValues true "Значения анкеты"
// @Success 200 {object} service.FormStatus
// @Failure 400 {object} handler.ErrorResponse
// @Failure 422 {object} service.FormStatus "Ошибки по полям"
// @Router /donation/blank [put]
func (h *Handler) UpdateBlank(c *gin.Context) {
	var values domain.BlankFormValues
	if err := c.BindJSON(&values); err != nil {
		h.logger.Error("Failed to bind blank form json", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
		return
	}

	status, err := h.donations.UpdateBlank(c.Request.Context(), sessionID(c), values)
	if err != nil {
		h.internalError(c, "failed to update blank form", err)
		return
	}
	if !status.Valid {
		c.JSON(http.StatusUnprocessableEntity, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

// UpdatePayment godoc
// @Summary Обновить форму оплаты
// @Accept json
// @Produce json
// @Param payment body domain.PaymentFormValues true "Значения формы оплаты"
// @Success 200 {object} service.FormStatus
// @Failure 400 {object} handler.ErrorResponse
// @Failure 422 {object} service.FormStatus "Ошибки по полям"
// @Router /donation/payment [put]
func (h *Handler) UpdatePayment(c *gin.Context) {
	var values domain.PaymentFormValues
	if err := c.BindJSON(&values); err != nil {
		h.logger.Error("Failed to bind payment form json", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
		return
	}

	status, err := h.donations.UpdatePayment(c.Request.Context(), sessionID(c), values)
	if err != nil {
		h.internalError(c, "failed to update payment form", err)
		return
	}
	if !status.Valid {
		c.JSON(http.StatusUnprocessableEntity, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ClearFieldError godoc
// @Summary Снять ошибку с поля
// @Description Убирает ошибку одного поля без перевалидации всей подформы
// @Param form path string true "Подформа (blank|payment)"
// @Param field path string true "Имя поля"
// @Success 204
// @Failure 400 {object} handler.ErrorResponse
// @Router /donation/errors/{form}/{field} [delete]
func (h *Handler) ClearFieldError(c *gin.Context) {
	form := wizard.FormName(c.Param("form"))
	if form != wizard.FormBlank && form != wizard.FormPayment {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown form"})
		return
	}
	if err := h.donations.ClearFieldError(c.Request.Context(), sessionID(c), form, c.Param("field")); err != nil {
		h.internalError(c, "failed to clear field error", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// NextStep godoc
// @Summary Следующий шаг
// @Success 200 {object} service.StateView
// @Router /donation/next [post]
func (h *Handler) NextStep(c *gin.Context) {
	h.stepOp(c, h.donations.NextStep)
}

// PrevStep godoc
// @Summary Предыдущий шаг
// @Success 200 {object} service.StateView
// @Router /donation/prev [post]
func (h *Handler) PrevStep(c *gin.Context) {
	h.stepOp(c, h.donations.PrevStep)
}

func (h *Handler) stepOp(c *gin.Context, op func(context.Context, string) (service.StateView, error)) {
	state, err := op(c.Request.Context(), sessionID(c))
	if err != nil {
		h.internalError(c, "failed to change step", err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// GoToStep godoc
// @Summary Перейти на шаг
// @Param n path int true "Номер шага (1-3)"
// @Success 200 {object} service.StateView
// @Failure 400 {object} handler.ErrorResponse
// @Router /donation/step/{n} [post]
func (h *Handler) GoToStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		h.logger.Error("Invalid step number", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid step number"})
		return
	}

	state, err := h.donations.GoToStep(c.Request.Context(), sessionID(c), step)
	if err != nil {
		h.internalError(c, "failed to go to step", err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Submit godoc
// @Summary Завершить форму
// @Description Переводит мастер на шаг результата; итог платежа можно передать сразу либо позже
// @Accept json
// @Produce json
// @Param result body domain.PaymentResult false "Итог платежа, если уже известен"
// @Success 200 {object} service.StateView
// @Router /donation/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	var result *domain.PaymentResult
	if c.Request.ContentLength > 0 {
		result = &domain.PaymentResult{}
		if err := c.BindJSON(result); err != nil {
			h.logger.Error("Failed to bind payment result json", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
			return
		}
	}

	state, err := h.donations.Finish(c.Request.Context(), sessionID(c), result)
	if err != nil {
		h.internalError(c, "failed to finish donation", err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PaymentResult godoc
// @Summary Зафиксировать итог платежа
// @Description Заглушка платёжного callback; боевой путь — Kafka-консьюмер
// @Accept json
// @Param result body domain.PaymentResult true "Итог платежа"
// @Success 204
// @Failure 400 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Router /donation/payment-result [post]
func (h *Handler) PaymentResult(c *gin.Context) {
	var result domain.PaymentResult
	if err := c.BindJSON(&result); err != nil {
		h.logger.Error("Failed to bind payment result json", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
		return
	}

	err := h.donations.CompletePayment(c.Request.Context(), sessionID(c), result)
	if err != nil {
		if errors.Is(err, e.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
			return
		}
		h.internalError(c, "failed to complete payment", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reset godoc
// @Summary Сбросить форму
// @Success 200 {object} service.StateView
// @Router /donation/reset [post]
func (h *Handler) Reset(c *gin.Context) {
	state, err := h.donations.Reset(c.Request.Context(), sessionID(c))
	if err != nil {
		h.internalError(c, "failed to reset form", err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type unsavedResponse struct {
	HasUnsavedData bool `json:"hasUnsavedData"`
}

// CheckUnsaved godoc
// @Summary Есть ли несохранённые данные
// @Description Синхронная проверка для канала beforeunload
// @Success 200 {object} handler.unsavedResponse
// @Router /donation/leave [get]
func (h *Handler) CheckUnsaved(c *gin.Context) {
	dirty, err := h.donations.HasUnsavedData(c.Request.Context(), sessionID(c))
	if err != nil {
		h.internalError(c, "failed to check unsaved data", err)
		return
	}
	c.JSON(http.StatusOK, unsavedResponse{HasUnsavedData: dirty})
}

type leaveRequest struct {
	Target string `json:"target"`
}

// RequestLeave godoc
// @Summary Запросить уход из мастера
// @Description Чистое состояние отпускает сразу; грязное подвешивает переход до confirm/cancel
// @Accept json
// @Produce json
// @Param target body handler.leaveRequest true "Целевой маршрут"
// @Success 200 {object} service.LeaveDecision "Уход разрешён"
// @Failure 409 {object} service.LeaveDecision "Требуется подтверждение"
// @Router /donation/leave [post]
func (h *Handler) RequestLeave(c *gin.Context) {
	var req leaveRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("Failed to bind leave request json", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid input"})
		return
	}

	decision, err := h.donations.RequestLeave(c.Request.Context(), sessionID(c), req.Target)
	if err != nil {
		if errors.Is(err, e.ErrLeavePending) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Leave confirmation already pending"})
			return
		}
		h.internalError(c, "failed to request leave", err)
		return
	}
	if decision.Allowed {
		c.JSON(http.StatusOK, decision)
		return
	}
	c.JSON(http.StatusConflict, decision)
}

// ConfirmLeave godoc
// @Summary Подтвердить уход
// @Success 204
// @Failure 409 {object} handler.ErrorResponse
// @Router /donation/leave/confirm [post]
func (h *Handler) ConfirmLeave(c *gin.Context) {
	h.resolveLeave(c, h.donations.ConfirmLeave)
}

// CancelLeave godoc
// @Summary Остаться на странице
// @Description Закрытие диалога эквивалентно отмене
// @Success 204
// @Failure 409 {object} handler.ErrorResponse
// @Router /donation/leave/cancel [post]
func (h *Handler) CancelLeave(c *gin.Context) {
	h.resolveLeave(c, h.donations.CancelLeave)
}

func (h *Handler) resolveLeave(c *gin.Context, op func(context.Context, string) error) {
	if err := op(c.Request.Context(), sessionID(c)); err != nil {
		if errors.Is(err, e.ErrNoPendingLeave) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "No pending leave"})
			return
		}
		h.internalError(c, "failed to resolve leave", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
