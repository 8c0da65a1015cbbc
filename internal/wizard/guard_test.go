package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cirillio/DonationApp/internal/domain"
	"github.com/Cirillio/DonationApp/pkg/e"
)

func TestHasUnsavedData_FreshWizardClean(t *testing.T) {
	w := newTestWizard()
	assert.False(t, w.HasUnsavedData())
}

func TestHasUnsavedData_IgnoredFieldsStayClean(t *testing.T) {
	w := newTestWizard()

	// смена страны и галочка «от группы» — не несохранённые данные
	form := domain.DefaultBlankForm()
	form.PhoneCountry = domain.PhoneCountryTJ
	form.IsGroup = true
	w.UpdateBlank(form)
	assert.False(t, w.HasUnsavedData())

	// заметка к платежу опциональна
	payment := domain.DefaultPaymentForm()
	payment.Note = "с любовью"
	w.UpdatePayment(payment)
	assert.False(t, w.HasUnsavedData())
}

func TestHasUnsavedData_TrackedFieldMakesDirty(t *testing.T) {
	w := newTestWizard()

	form := domain.DefaultBlankForm()
	form.Name = "Иван"
	w.UpdateBlank(form)
	assert.True(t, w.HasUnsavedData())

	// возврат к дефолту — снова чисто, без гистерезиса
	w.UpdateBlank(domain.DefaultBlankForm())
	assert.False(t, w.HasUnsavedData())
}

func TestHasUnsavedData_PaymentAmount(t *testing.T) {
	w := newTestWizard()

	payment := domain.DefaultPaymentForm()
	payment.Amount = 500
	w.UpdatePayment(payment)

	assert.True(t, w.HasUnsavedData())
}

func TestHasUnsavedData_ResultStepIsSaved(t *testing.T) {
	w := newTestWizard()
	form := domain.DefaultBlankForm()
	form.Name = "Иван"
	w.UpdateBlank(form)
	require.True(t, w.HasUnsavedData())

	w.Finish(nil)

	assert.False(t, w.HasUnsavedData())
}

func TestHasUnsavedData_SuccessfulPaymentPermanent(t *testing.T) {
	w := newTestWizard()
	w.SetPaymentResult(domain.PaymentResult{Success: true})

	// даже последующие правки форм не делают сеанс «грязным»
	form := domain.DefaultBlankForm()
	form.Name = "Иван"
	w.UpdateBlank(form)

	assert.False(t, w.HasUnsavedData())
}

func dirtyWizard(t *testing.T) *Wizard {
	t.Helper()
	w := newTestWizard()
	form := domain.DefaultBlankForm()
	form.Name = "Иван"
	w.UpdateBlank(form)
	require.True(t, w.HasUnsavedData())
	return w
}

func TestLeaveGuard_CleanPassesThrough(t *testing.T) {
	w := newTestWizard()
	g := NewLeaveGuard(w, nil)

	var resumed, confirmed bool
	allowed, err := g.RequestLeave("/news", func(ok bool) {
		resumed = true
		confirmed = ok
	})

	require.NoError(t, err)
	assert.True(t, allowed)
	assert.True(t, resumed)
	assert.True(t, confirmed)
	_, pending := g.PendingTarget()
	assert.False(t, pending)
}

func TestLeaveGuard_DirtySuspendsNavigation(t *testing.T) {
	w := dirtyWizard(t)
	g := NewLeaveGuard(w, nil)

	var resumed bool
	allowed, err := g.RequestLeave("/news", func(bool) { resumed = true })

	require.NoError(t, err)
	assert.False(t, allowed)
	assert.False(t, resumed)

	target, pending := g.PendingTarget()
	assert.True(t, pending)
	assert.Equal(t, "/news", target)
}

func TestLeaveGuard_SecondRequestRejected(t *testing.T) {
	w := dirtyWizard(t)
	g := NewLeaveGuard(w, nil)

	_, err := g.RequestLeave("/news", nil)
	require.NoError(t, err)

	// повторный перехват не замещает подвешенный переход
	_, err = g.RequestLeave("/stats", nil)
	assert.ErrorIs(t, err, e.ErrLeavePending)

	target, _ := g.PendingTarget()
	assert.Equal(t, "/news", target)
}

func TestLeaveGuard_ConfirmResetsAndResumes(t *testing.T) {
	w := dirtyWizard(t)
	g := NewLeaveGuard(w, w.ResetForm)

	var confirmed bool
	_, err := g.RequestLeave("/news", func(ok bool) { confirmed = ok })
	require.NoError(t, err)

	require.NoError(t, g.Confirm())

	assert.True(t, confirmed)
	assert.Equal(t, domain.DefaultBlankForm(), w.Blank())
	assert.False(t, w.HasUnsavedData())
	_, pending := g.PendingTarget()
	assert.False(t, pending)
}

func TestLeaveGuard_CancelKeepsData(t *testing.T) {
	w := dirtyWizard(t)
	g := NewLeaveGuard(w, w.ResetForm)

	var confirmed = true
	_, err := g.RequestLeave("/news", func(ok bool) { confirmed = ok })
	require.NoError(t, err)

	require.NoError(t, g.Cancel())

	assert.False(t, confirmed)
	assert.Equal(t, "Иван", w.Blank().Name)
	assert.True(t, w.HasUnsavedData())
	_, pending := g.PendingTarget()
	assert.False(t, pending)
}

func TestLeaveGuard_ResolveWithoutPending(t *testing.T) {
	g := NewLeaveGuard(newTestWizard(), nil)

	assert.ErrorIs(t, g.Confirm(), e.ErrNoPendingLeave)
	assert.ErrorIs(t, g.Cancel(), e.ErrNoPendingLeave)
}
