package wizard

import (
	"strings"

	"github.com/Cirillio/DonationApp/internal/domain"
)

// Явные таблицы полей, не учитываемых при определении «грязности».
// Выбор страны или галочка «от группы» сами по себе не считаются
// несохранёнными данными; заметка к платежу опциональна.
var (
	blankDirtyIgnore = map[string]struct{}{
		"phoneCountry": {},
		"isGroup":      {},
	}
	paymentDirtyIgnore = map[string]struct{}{
		"note": {},
	}
)

// HasUnsavedData: хоть одна подформа отличается от дефолтов по
// неигнорируемым полям, платёж ещё не прошёл успешно и мастер не
// дошёл до терминального шага.
func (w *Wizard) HasUnsavedData() bool {
	if w.completed {
		return false
	}
	if w.currentStep >= domain.StepResult {
		return false
	}
	return w.blankDirty() || w.paymentDirty()
}

func (w *Wizard) blankDirty() bool {
	def := domain.DefaultBlankForm()
	fields := map[string]bool{
		"phone":        normalize(w.blank.Phone) != normalize(def.Phone),
		"phoneCountry": w.blank.PhoneCountry != def.PhoneCountry,
		"name":         normalize(w.blank.Name) != normalize(def.Name),
		"birth":        normalize(w.blank.Birth) != normalize(def.Birth),
		"isGroup":      w.blank.IsGroup != def.IsGroup,
	}
	return anyDirty(fields, blankDirtyIgnore)
}

func (w *Wizard) paymentDirty() bool {
	def := domain.DefaultPaymentForm()
	fields := map[string]bool{
		"amount": w.payment.Amount != def.Amount,
		"type":   normalize(string(w.payment.Type)) != normalize(string(def.Type)),
		"note":   normalize(w.payment.Note) != normalize(def.Note),
	}
	return anyDirty(fields, paymentDirtyIgnore)
}

func anyDirty(fields map[string]bool, ignore map[string]struct{}) bool {
	for name, differs := range fields {
		if _, skip := ignore[name]; skip {
			continue
		}
		if differs {
			return true
		}
	}
	return false
}

// Пустая строка и строка из одних пробелов эквивалентны «значение не задано».
func normalize(s string) string {
	return strings.TrimSpace(s)
}
