package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cirillio/DonationApp/internal/domain"
	"github.com/Cirillio/DonationApp/internal/storage/memory"
	"github.com/Cirillio/DonationApp/internal/validation"
	"github.com/Cirillio/DonationApp/pkg/e"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestService(store Store) *Service {
	v := validation.New(validation.WithNow(func() time.Time { return testNow }))
	return NewService(slog.Default(), store, v, time.Hour)
}

func validBlank() domain.BlankFormValues {
	return domain.BlankFormValues{
		Phone:        "(900) 123-45-67",
		PhoneCountry: domain.PhoneCountryRU,
		Name:         "Иван",
		Birth:        "01.01.1990",
	}
}

func validPayment() domain.PaymentFormValues {
	return domain.PaymentFormValues{
		Amount: 1000,
		Type:   domain.PaymentTypeSBP,
	}
}

func TestService_UpdatePersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMemory()
	s := newTestService(store)

	status, err := s.UpdateBlank(ctx, "sess-1", validBlank())
	require.NoError(t, err)
	assert.True(t, status.Valid)

	var snap domain.SessionSnapshot
	require.NoError(t, store.Get(ctx, "donation:session:sess-1", &snap))
	// телефон в снапшоте нормализован до цифр
	assert.Equal(t, "9001234567", snap.BlankForm.Phone)
	assert.Equal(t, "Иван", snap.BlankForm.Name)
}

func TestService_ColdRestoreRevalidates(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMemory()

	first := newTestService(store)
	_, err := first.UpdateBlank(ctx, "sess-1", validBlank())
	require.NoError(t, err)
	_, err = first.NextStep(ctx, "sess-1")
	require.NoError(t, err)

	// новый процесс, тот же session-store
	second := newTestService(store)
	state, err := second.State(ctx, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StepPayment, state.CurrentStep)
	assert.Equal(t, "9001234567", state.Blank.Phone)
	// валидность пересчитана при восстановлении, не хранится в снапшоте
	assert.True(t, state.StepsValidity[domain.StepBlank])
	assert.False(t, state.StepsValidity[domain.StepPayment])
}

func TestService_CorruptSnapshotFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMemory()
	require.NoError(t, store.Set(ctx, "donation:session:sess-1", "not-a-snapshot", time.Hour))

	s := newTestService(store)
	state, err := s.State(ctx, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StepBlank, state.CurrentStep)
	assert.Equal(t, domain.DefaultBlankForm(), state.Blank)
}

func TestService_ResetClearsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMemory()
	s := newTestService(store)

	_, err := s.UpdateBlank(ctx, "sess-1", validBlank())
	require.NoError(t, err)

	state, err := s.Reset(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepBlank, state.CurrentStep)
	assert.Equal(t, domain.DefaultBlankForm(), state.Blank)

	var snap domain.SessionSnapshot
	err = store.Get(ctx, "donation:session:sess-1", &snap)
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestService_CompletePayment(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMemory()
	s := newTestService(store)

	_, err := s.Finish(ctx, "sess-1", nil)
	require.NoError(t, err)

	err = s.CompletePayment(ctx, "sess-1", domain.PaymentResult{Success: true, PaymentID: "pay-1"})
	require.NoError(t, err)

	state, err := s.State(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, state.Completed)
	require.NotNil(t, state.PaymentResult)
	assert.Equal(t, "pay-1", state.PaymentResult.PaymentID)
}

func TestService_CompletePaymentUnknownSession(t *testing.T) {
	ctx := context.Background()
	s := newTestService(memory.NewMemory())

	err := s.CompletePayment(ctx, "ghost", domain.PaymentResult{Success: true})

	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestService_LeaveFlow(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMemory()
	s := newTestService(store)

	// чистый сеанс отпускают сразу
	decision, err := s.RequestLeave(ctx, "sess-1", "/news")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	_, err = s.UpdateBlank(ctx, "sess-1", validBlank())
	require.NoError(t, err)

	decision, err = s.RequestLeave(ctx, "sess-1", "/news")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.True(t, decision.Pending)
	assert.Equal(t, "/news", decision.Target)

	_, err = s.RequestLeave(ctx, "sess-1", "/stats")
	assert.ErrorIs(t, err, e.ErrLeavePending)

	require.NoError(t, s.ConfirmLeave(ctx, "sess-1"))

	state, err := s.State(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBlankForm(), state.Blank)
	assert.False(t, state.HasUnsavedData)

	var snap domain.SessionSnapshot
	err = store.Get(ctx, "donation:session:sess-1", &snap)
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}

func TestService_CancelLeaveKeepsData(t *testing.T) {
	ctx := context.Background()
	s := newTestService(memory.NewMemory())

	_, err := s.UpdateBlank(ctx, "sess-1", validBlank())
	require.NoError(t, err)

	_, err = s.RequestLeave(ctx, "sess-1", "/news")
	require.NoError(t, err)

	require.NoError(t, s.CancelLeave(ctx, "sess-1"))

	state, err := s.State(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Иван", state.Blank.Name)
	assert.True(t, state.HasUnsavedData)
}

func TestService_InitStatusDoesNotPersistFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.NewMemory()
	s := newTestService(store)

	result, err := s.InitStatus(ctx, "sess-1", "bogus")
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Query)
	assert.Equal(t, domain.StartStatus, result.Query.Status)

	var snap domain.SessionSnapshot
	err = store.Get(ctx, "donation:session:sess-1", &snap)
	assert.ErrorIs(t, err, e.ErrSessionNotFound)
}
