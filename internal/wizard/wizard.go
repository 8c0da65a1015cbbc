// Package wizard реализует машину состояний многошаговой формы
// пожертвования: текущий шаг, значения и валидность подформ,
// итог платежа и защиту от ухода с несохранёнными данными.
//
// Машина — механизм, а не политика: операции переходов тотальны
// (вне диапазона — no-op, не ошибка), а блокировать переход при
// невалидной подформе должен вызывающий слой по CanAdvance.
package wizard

import (
	"github.com/Cirillio/DonationApp/internal/domain"
	"github.com/Cirillio/DonationApp/internal/validation"
)

type FormName string

const (
	FormBlank   FormName = "blank"
	FormPayment FormName = "payment"
)

// Direction — направление последнего перехода, нужно только для
// анимации на клиенте, бизнес-логика его не читает.
type Direction string

const (
	DirectionNone     Direction = "none"
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

// Wizard владеет своими подформами по значению, без разделяемых ссылок.
// Один экземпляр на сеанс, доступ синхронизируется владельцем (service).
type Wizard struct {
	validator *validation.Validator

	currentStep int
	direction   Direction

	blank   domain.BlankFormValues
	payment domain.PaymentFormValues

	blankValid   bool
	paymentValid bool

	blankErrors   validation.Errors
	paymentErrors validation.Errors

	paymentResult *domain.PaymentResult
	completed     bool
}

func New(v *validation.Validator) *Wizard {
	return &Wizard{
		validator:   v,
		currentStep: domain.StepBlank,
		direction:   DirectionNone,
		blank:       domain.DefaultBlankForm(),
		payment:     domain.DefaultPaymentForm(),
	}
}

func (w *Wizard) CurrentStep() int { return w.currentStep }

func (w *Wizard) CurrentStatus() domain.DonationStatus {
	return domain.StepToStatus[w.currentStep]
}

func (w *Wizard) Direction() Direction { return w.direction }

func (w *Wizard) IsCurrentStep(status domain.DonationStatus) bool {
	return w.currentStep == domain.StatusToStep[status]
}

// StepValidity: шаг результата никогда не «валиден» — это закрывает
// обратный вход в мастер со страницы результата через gating.
func (w *Wizard) StepValidity(step int) bool {
	switch step {
	case domain.StepBlank:
		return w.blankValid
	case domain.StepPayment:
		return w.paymentValid
	default:
		return false
	}
}

// CanAdvance — валидность подформы текущего шага. Чтение flag'а,
// решение о блокировке кнопки «далее» принимает вызывающий.
func (w *Wizard) CanAdvance() bool {
	return w.StepValidity(w.currentStep)
}

func (w *Wizard) Blank() domain.BlankFormValues     { return w.blank }
func (w *Wizard) Payment() domain.PaymentFormValues { return w.payment }

func (w *Wizard) BlankErrors() validation.Errors   { return w.blankErrors }
func (w *Wizard) PaymentErrors() validation.Errors { return w.paymentErrors }

func (w *Wizard) PaymentResult() *domain.PaymentResult {
	if w.paymentResult == nil {
		return nil
	}
	result := *w.paymentResult
	return &result
}

func (w *Wizard) Completed() bool { return w.completed }

// UpdateBlank применяет новые значения анкеты и тут же перевалидирует
// её — валидность всегда пересчитана до любого gating-решения.
func (w *Wizard) UpdateBlank(values domain.BlankFormValues) (bool, validation.Errors) {
	w.blank = values
	w.blankErrors = w.validator.ValidateBlank(w.blank)
	w.blankValid = w.blankErrors == nil
	return w.blankValid, w.blankErrors
}

func (w *Wizard) UpdatePayment(values domain.PaymentFormValues) (bool, validation.Errors) {
	w.payment = values
	w.paymentErrors = w.validator.ValidatePayment(w.payment)
	w.paymentValid = w.paymentErrors == nil
	return w.paymentValid, w.paymentErrors
}

// ClearFieldError снимает ошибку с одного поля без полного прогона —
// частичный повторный ввод не требует перевалидации всей подформы.
func (w *Wizard) ClearFieldError(form FormName, field string) {
	switch form {
	case FormBlank:
		delete(w.blankErrors, field)
	case FormPayment:
		delete(w.paymentErrors, field)
	}
}

func (w *Wizard) NextStep() {
	if w.currentStep < domain.MaxSteps {
		w.currentStep++
		w.direction = DirectionForward
	}
}

func (w *Wizard) PrevStep() {
	if w.currentStep > domain.StepBlank {
		w.currentStep--
		w.direction = DirectionBackward
	}
}

func (w *Wizard) GoToStep(step int) {
	if step < domain.StepBlank || step > domain.MaxSteps {
		return
	}
	switch {
	case step > w.currentStep:
		w.direction = DirectionForward
	case step < w.currentStep:
		w.direction = DirectionBackward
	}
	w.currentStep = step
}

// Finish переводит мастер на шаг результата. Итог платежа можно
// передать сразу либо позже через SetPaymentResult, когда внешний
// платёжный вызов разрешится.
func (w *Wizard) Finish(result *domain.PaymentResult) {
	if result != nil {
		w.setResult(*result)
	}
	w.GoToStep(domain.StepResult)
}

// SetPaymentResult фиксирует итог платежа; успех помечает сеанс
// завершённым до самого сброса — данные считаются сохранёнными.
func (w *Wizard) SetPaymentResult(result domain.PaymentResult) {
	w.setResult(result)
}

func (w *Wizard) setResult(result domain.PaymentResult) {
	w.paymentResult = &result
	if result.Success {
		w.completed = true
	}
}

// ResetForm возвращает мастер к исходному состоянию. Идемпотентен.
func (w *Wizard) ResetForm() {
	w.currentStep = domain.StepBlank
	w.direction = DirectionNone
	w.blank = domain.DefaultBlankForm()
	w.payment = domain.DefaultPaymentForm()
	w.blankValid = false
	w.paymentValid = false
	w.blankErrors = nil
	w.paymentErrors = nil
	w.paymentResult = nil
	w.completed = false
}

type StatusQuery struct {
	Status domain.DonationStatus `json:"status"`
}

type InitStatusResult struct {
	Success bool         `json:"success"`
	Query   *StatusQuery `json:"query,omitempty"`
}

// InitStatus валидирует токен статуса из URL и переводит мастер на
// соответствующий шаг. Для пустого или неизвестного токена шаг не
// меняется, вызывающему возвращается корректирующий стартовый токен —
// переписать URL должен он сам.
func (w *Wizard) InitStatus(token domain.DonationStatus) InitStatusResult {
	if token == "" {
		return InitStatusResult{Success: false, Query: &StatusQuery{Status: domain.StartStatus}}
	}
	if step, ok := domain.StatusToStep[token]; ok {
		w.GoToStep(step)
		return InitStatusResult{Success: true}
	}
	return InitStatusResult{Success: false, Query: &StatusQuery{Status: domain.StartStatus}}
}

// Snapshot сериализует сеанс для session-store: телефон нормализуется
// до цифр национальной части.
func (w *Wizard) Snapshot() domain.SessionSnapshot {
	blank := w.blank
	blank.Phone = domain.NormalizePhone(blank.Phone)
	return domain.SessionSnapshot{
		CurrentStep: w.currentStep,
		BlankForm:   blank,
		PaymentForm: w.payment,
	}
}

// Restore восстанавливает сеанс из снапшота: шаг зажимается в допустимый
// диапазон, обе подформы сразу перевалидируются, чтобы флаги валидности
// были готовы до первого gating-чтения.
func (w *Wizard) Restore(snap domain.SessionSnapshot) {
	step := snap.CurrentStep
	if step < domain.StepBlank {
		step = domain.StepBlank
	}
	if step > domain.MaxSteps {
		step = domain.MaxSteps
	}
	w.currentStep = step
	w.direction = DirectionNone
	w.UpdateBlank(snap.BlankForm)
	w.UpdatePayment(snap.PaymentForm)
}
