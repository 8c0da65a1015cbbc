package wizard

import "github.com/Cirillio/DonationApp/pkg/e"

// PendingNavigation — приостановленный переход: цель и продолжение.
// resume(true) — уйти, resume(false) — остаться. Слот ровно один.
type PendingNavigation struct {
	Target string
	resume func(confirmed bool)
}

// LeaveGuard перехватывает попытку ухода из мастера при несохранённых
// данных. Чистое состояние пропускается сразу; грязное — подвешивает
// переход до Confirm/Cancel. Повторный перехват при уже подвешенном
// переходе отклоняется: первый ждёт решения пользователя, второй не
// замещает его молча.
type LeaveGuard struct {
	wizard  *Wizard
	onReset func()
	pending *PendingNavigation
}

// NewLeaveGuard: onReset вызывается при подтверждённом уходе,
// обычно это ResetForm; допустим nil.
func NewLeaveGuard(w *Wizard, onReset func()) *LeaveGuard {
	return &LeaveGuard{wizard: w, onReset: onReset}
}

// HasUnsavedData — синхронный ответ для канала beforeunload: браузер
// ждёт булево решение в рамках одного вызова, async здесь невозможен.
func (g *LeaveGuard) HasUnsavedData() bool {
	return g.wizard.HasUnsavedData()
}

// RequestLeave рассматривает попытку навигации на target.
// Возвращает allowed=true, если уход разрешён немедленно; иначе переход
// подвешен и ждёт Confirm/Cancel. resume может быть nil.
func (g *LeaveGuard) RequestLeave(target string, resume func(confirmed bool)) (bool, error) {
	if !g.wizard.HasUnsavedData() {
		if resume != nil {
			resume(true)
		}
		return true, nil
	}
	if g.pending != nil {
		return false, e.ErrLeavePending
	}
	g.pending = &PendingNavigation{Target: target, resume: resume}
	return false, nil
}

// PendingTarget — цель подвешенного перехода, если он есть.
func (g *LeaveGuard) PendingTarget() (string, bool) {
	if g.pending == nil {
		return "", false
	}
	return g.pending.Target, true
}

// Confirm: пользователь согласился уйти — сброс, затем возобновление
// отложенного перехода.
func (g *LeaveGuard) Confirm() error {
	p := g.pending
	if p == nil {
		return e.ErrNoPendingLeave
	}
	g.pending = nil
	if g.onReset != nil {
		g.onReset()
	}
	if p.resume != nil {
		p.resume(true)
	}
	return nil
}

// Cancel: пользователь остаётся — переход отменяется, состояние формы
// не трогается. Закрытие диалога (Escape) эквивалентно Cancel.
func (g *LeaveGuard) Cancel() error {
	p := g.pending
	if p == nil {
		return e.ErrNoPendingLeave
	}
	g.pending = nil
	if p.resume != nil {
		p.resume(false)
	}
	return nil
}
