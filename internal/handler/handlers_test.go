package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Cirillio/DonationApp/internal/domain"
	mock_handler "github.com/Cirillio/DonationApp/internal/handler/mocks"
	"github.com/Cirillio/DonationApp/internal/service"
	"github.com/Cirillio/DonationApp/internal/validation"
	"github.com/Cirillio/DonationApp/internal/wizard"
	"github.com/Cirillio/DonationApp/pkg/e"
)

func setupRouter(logger *slog.Logger, mockService *mock_handler.MockDonationService, mockRenderer *mock_handler.MockRenderer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(logger, mockService, mockRenderer)
	r := gin.New()
	r.GET("/", h.ShowHomepage)
	donation := r.Group("/donation", SessionMiddleware("donation_session"))
	{
		donation.GET("", h.GetDonation)
		donation.PUT("/blank", h.UpdateBlank)
		donation.PUT("/payment", h.UpdatePayment)
		donation.POST("/step/:n", h.GoToStep)
		donation.POST("/submit", h.Submit)
		donation.POST("/payment-result", h.PaymentResult)
		donation.POST("/leave", h.RequestLeave)
		donation.POST("/leave/confirm", h.ConfirmLeave)
		donation.POST("/leave/cancel", h.CancelLeave)
	}
	return r
}

func newMocks(t *testing.T) (*mock_handler.MockDonationService, *mock_handler.MockRenderer, *gin.Engine) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mock_handler.NewMockDonationService(ctrl)
	mockRenderer := mock_handler.NewMockRenderer(ctrl)
	r := setupRouter(slog.Default(), mockService, mockRenderer)
	return mockService, mockRenderer, r
}

func TestHandler_GetDonation_ValidStatus(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().InitStatus(gomock.Any(), gomock.Any(), domain.StatusPayment).
		Return(wizard.InitStatusResult{Success: true}, nil)
	mockService.EXPECT().State(gomock.Any(), gomock.Any()).
		Return(service.StateView{
			CurrentStep:   2,
			CurrentStatus: domain.StatusPayment,
			StepsValidity: map[int]bool{domain.StepBlank: true, domain.StepPayment: false},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/donation?status=payment", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"currentStep\":2")
}

func TestHandler_GetDonation_PaymentDeepLinkGuard(t *testing.T) {
	mockService, _, r := newMocks(t)

	// анкета невалидна — deep-link на оплату возвращают на старт
	mockService.EXPECT().InitStatus(gomock.Any(), gomock.Any(), domain.StatusPayment).
		Return(wizard.InitStatusResult{Success: true}, nil)
	mockService.EXPECT().State(gomock.Any(), gomock.Any()).
		Return(service.StateView{
			CurrentStep:   2,
			CurrentStatus: domain.StatusPayment,
			StepsValidity: map[int]bool{domain.StepBlank: false},
		}, nil)
	mockService.EXPECT().GoToStep(gomock.Any(), gomock.Any(), domain.StepBlank).
		Return(service.StateView{CurrentStep: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/donation?status=payment", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/donation?status=blank", w.Header().Get("Location"))
}

func TestHandler_GetDonation_BogusStatusRedirects(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().InitStatus(gomock.Any(), gomock.Any(), domain.DonationStatus("bogus")).
		Return(wizard.InitStatusResult{
			Success: false,
			Query:   &wizard.StatusQuery{Status: domain.StartStatus},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/donation?status=bogus", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/donation?status=blank", w.Header().Get("Location"))
}

func TestHandler_GetDonation_PaymentTokenJumpsToResult(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().GoToStep(gomock.Any(), gomock.Any(), domain.StepResult).
		Return(service.StateView{CurrentStep: 3, CurrentStatus: domain.StatusResult}, nil)

	req := httptest.NewRequest(http.MethodGet, "/donation?payment-token=tok-1", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"currentStep\":3")
}

func TestHandler_UpdateBlank_Valid(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().UpdateBlank(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.FormStatus{Valid: true}, nil)

	body := `{"phone":"9001234567","phoneCountry":"RU","name":"Иван","birth":"01.01.1990"}`
	req := httptest.NewRequest(http.MethodPut, "/donation/blank", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"valid\":true")
}

func TestHandler_UpdateBlank_InvalidReturns422(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().UpdateBlank(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.FormStatus{
			Valid: false,
			Errors: validation.Errors{
				"phone": {Rule: validation.RuleInvalidPhone, Message: "Телефон обязателен для заполнения."},
			},
		}, nil)

	body := `{"phone":""}`
	req := httptest.NewRequest(http.MethodPut, "/donation/blank", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "InvalidPhone")
}

func TestHandler_UpdateBlank_BindError(t *testing.T) {
	_, _, r := newMocks(t)

	req := httptest.NewRequest(http.MethodPut, "/donation/blank", strings.NewReader("invalid-json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid input")
}

func TestHandler_GoToStep_BadNumber(t *testing.T) {
	_, _, r := newMocks(t)

	req := httptest.NewRequest(http.MethodPost, "/donation/step/abc", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid step number")
}

func TestHandler_Submit_WithoutBody(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().Finish(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(service.StateView{CurrentStep: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/donation/submit", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"currentStep\":3")
}

func TestHandler_PaymentResult_SessionNotFound(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().CompletePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(e.Wrap("service.CompletePayment", e.ErrSessionNotFound))

	body := `{"success":true,"paymentId":"pay-1"}`
	req := httptest.NewRequest(http.MethodPost, "/donation/payment-result", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Session not found")
}

func TestHandler_RequestLeave_Allowed(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().RequestLeave(gomock.Any(), gomock.Any(), "/news").
		Return(service.LeaveDecision{Allowed: true}, nil)

	req := httptest.NewRequest(http.MethodPost, "/donation/leave", strings.NewReader(`{"target":"/news"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"allowed\":true")
}

func TestHandler_RequestLeave_Pending(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().RequestLeave(gomock.Any(), gomock.Any(), "/news").
		Return(service.LeaveDecision{Pending: true, Target: "/news"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/donation/leave", strings.NewReader(`{"target":"/news"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "\"pending\":true")
}

func TestHandler_RequestLeave_AlreadyPending(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().RequestLeave(gomock.Any(), gomock.Any(), "/stats").
		Return(service.LeaveDecision{}, e.ErrLeavePending)

	req := httptest.NewRequest(http.MethodPost, "/donation/leave", strings.NewReader(`{"target":"/stats"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already pending")
}

func TestHandler_ConfirmLeave(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().ConfirmLeave(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/donation/leave/confirm", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_CancelLeave_NoPending(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().CancelLeave(gomock.Any(), gomock.Any()).Return(e.ErrNoPendingLeave)

	req := httptest.NewRequest(http.MethodPost, "/donation/leave/cancel", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "No pending leave")
}

func TestHandler_SessionCookieIssued(t *testing.T) {
	mockService, _, r := newMocks(t)

	mockService.EXPECT().InitStatus(gomock.Any(), gomock.Any(), domain.StatusBlank).
		Return(wizard.InitStatusResult{Success: true}, nil)
	mockService.EXPECT().State(gomock.Any(), gomock.Any()).
		Return(service.StateView{CurrentStep: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/donation?status=blank", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "donation_session" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "session cookie should be issued")
}

func TestHandler_ShowHomepage(t *testing.T) {
	_, mockRenderer, r := newMocks(t)

	mockRenderer.EXPECT().RenderHome(gomock.Any()).Do(func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("homepage"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "homepage", w.Body.String())
}
