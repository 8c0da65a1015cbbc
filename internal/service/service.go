package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Cirillio/DonationApp/internal/domain"
	"github.com/Cirillio/DonationApp/internal/validation"
	"github.com/Cirillio/DonationApp/internal/wizard"
	"github.com/Cirillio/DonationApp/pkg/e"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Store — session-scoped хранилище снапшотов мастера.
type Store interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest *domain.SessionSnapshot) error
	Del(ctx context.Context, key string) error
}

// Service владеет реестром живых мастеров по сеансам и сквозной записью
// снапшотов в session-store. Живой экземпляр — источник истины на время
// сеанса; снапшот нужен для холодного восстановления и переживает только
// {currentStep, blankForm, paymentForm}, как и положено session-storage.
type Service struct {
	logger    *slog.Logger
	store     Store
	validator *validation.Validator
	ttl       time.Duration

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	wizard *wizard.Wizard
	guard  *wizard.LeaveGuard
}

func NewService(logger *slog.Logger, store Store, validator *validation.Validator, ttl time.Duration) *Service {
	return &Service{
		logger:    logger,
		store:     store,
		validator: validator,
		ttl:       ttl,
		sessions:  make(map[string]*session),
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("donation:session:%s", id)
}

// session возвращает живой сеанс, при необходимости восстанавливая его
// из снапшота. Ошибка чтения хранилища (кроме отсутствия ключа) не
// фатальна: логируется и сеанс начинается с дефолтов.
// Вызывается под s.mu.
func (s *Service) session(ctx context.Context, id string) *session {
	if sess, ok := s.sessions[id]; ok {
		return sess
	}

	w := wizard.New(s.validator)

	var snap domain.SessionSnapshot
	err := s.store.Get(ctx, sessionKey(id), &snap)
	switch {
	case err == nil:
		w.Restore(snap)
	case errors.Is(err, e.ErrSessionNotFound):
		// новый сеанс
	default:
		s.logger.Error("failed to load session snapshot, falling back to defaults",
			slog.String("session", id), slog.String("error", err.Error()))
	}

	sess := &session{wizard: w}
	sess.guard = wizard.NewLeaveGuard(w, w.ResetForm)
	s.sessions[id] = sess
	return sess
}

// persist пишет снапшот в хранилище. Сбой записи не прерывает операцию:
// худший исход подсистемы — откат мастера к начальному состоянию.
func (s *Service) persist(ctx context.Context, id string, sess *session) {
	if err := s.store.Set(ctx, sessionKey(id), sess.wizard.Snapshot(), s.ttl); err != nil {
		s.logger.Error("failed to persist session snapshot",
			slog.String("session", id), slog.String("error", err.Error()))
	}
}

// StateView — публичное состояние мастера для HTTP-слоя.
type StateView struct {
	CurrentStep    int                   `json:"currentStep"`
	CurrentStatus  domain.DonationStatus `json:"currentStatus"`
	Direction      wizard.Direction      `json:"transitionDirection"`
	Blank          domain.BlankFormValues   `json:"blank"`
	Payment        domain.PaymentFormValues `json:"payment"`
	BlankErrors    validation.Errors     `json:"blankErrors,omitempty"`
	PaymentErrors  validation.Errors     `json:"paymentErrors,omitempty"`
	StepsValidity  map[int]bool          `json:"stepsValidity"`
	CanAdvance     bool                  `json:"canAdvance"`
	PaymentResult  *domain.PaymentResult `json:"paymentResult,omitempty"`
	Completed      bool                  `json:"completed"`
	HasUnsavedData bool                  `json:"hasUnsavedData"`
}

// FormStatus — итог обновления подформы.
type FormStatus struct {
	Valid  bool              `json:"valid"`
	Errors validation.Errors `json:"errors,omitempty"`
}

// LeaveDecision — итог запроса на уход из мастера.
type LeaveDecision struct {
	Allowed bool   `json:"allowed"`
	Pending bool   `json:"pending"`
	Target  string `json:"target,omitempty"`
}

func stateView(sess *session) StateView {
	w := sess.wizard
	return StateView{
		CurrentStep:   w.CurrentStep(),
		CurrentStatus: w.CurrentStatus(),
		Direction:     w.Direction(),
		Blank:         w.Blank(),
		Payment:       w.Payment(),
		BlankErrors:   w.BlankErrors(),
		PaymentErrors: w.PaymentErrors(),
		StepsValidity: map[int]bool{
			domain.StepBlank:   w.StepValidity(domain.StepBlank),
			domain.StepPayment: w.StepValidity(domain.StepPayment),
			domain.StepResult:  w.StepValidity(domain.StepResult),
		},
		CanAdvance:     w.CanAdvance(),
		PaymentResult:  w.PaymentResult(),
		Completed:      w.Completed(),
		HasUnsavedData: w.HasUnsavedData(),
	}
}

func (s *Service) State(ctx context.Context, id string) (StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stateView(s.session(ctx, id)), nil
}

func (s *Service) UpdateBlank(ctx context.Context, id string, values domain.BlankFormValues) (FormStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	valid, errs := sess.wizard.UpdateBlank(values)
	s.persist(ctx, id, sess)
	return FormStatus{Valid: valid, Errors: errs}, nil
}

func (s *Service) UpdatePayment(ctx context.Context, id string, values domain.PaymentFormValues) (FormStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	valid, errs := sess.wizard.UpdatePayment(values)
	s.persist(ctx, id, sess)
	return FormStatus{Valid: valid, Errors: errs}, nil
}

func (s *Service) ClearFieldError(ctx context.Context, id string, form wizard.FormName, field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session(ctx, id).wizard.ClearFieldError(form, field)
	return nil
}

func (s *Service) NextStep(ctx context.Context, id string) (StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	sess.wizard.NextStep()
	s.persist(ctx, id, sess)
	return stateView(sess), nil
}

func (s *Service) PrevStep(ctx context.Context, id string) (StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	sess.wizard.PrevStep()
	s.persist(ctx, id, sess)
	return stateView(sess), nil
}

func (s *Service) GoToStep(ctx context.Context, id string, step int) (StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	sess.wizard.GoToStep(step)
	s.persist(ctx, id, sess)
	return stateView(sess), nil
}

func (s *Service) Finish(ctx context.Context, id string, result *domain.PaymentResult) (StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	sess.wizard.Finish(result)
	s.persist(ctx, id, sess)
	return stateView(sess), nil
}

// CompletePayment разрешает отложенный итог платежа. Общая точка входа
// для HTTP-заглушки и Kafka-консьюмера платёжных событий.
func (s *Service) CompletePayment(ctx context.Context, id string, result domain.PaymentResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, live := s.sessions[id]; !live {
		var snap domain.SessionSnapshot
		if err := s.store.Get(ctx, sessionKey(id), &snap); err != nil {
			return e.Wrap("service.CompletePayment", e.ErrSessionNotFound)
		}
	}

	sess := s.session(ctx, id)
	sess.wizard.SetPaymentResult(result)
	s.persist(ctx, id, sess)
	return nil
}

func (s *Service) Reset(ctx context.Context, id string) (StateView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	sess.wizard.ResetForm()
	if err := s.store.Del(ctx, sessionKey(id)); err != nil {
		s.logger.Error("failed to clear session snapshot",
			slog.String("session", id), slog.String("error", err.Error()))
	}
	return stateView(sess), nil
}

func (s *Service) InitStatus(ctx context.Context, id string, token domain.DonationStatus) (wizard.InitStatusResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	result := sess.wizard.InitStatus(token)
	if result.Success {
		s.persist(ctx, id, sess)
	}
	return result, nil
}

func (s *Service) HasUnsavedData(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(ctx, id).guard.HasUnsavedData(), nil
}

func (s *Service) RequestLeave(ctx context.Context, id string, target string) (LeaveDecision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	allowed, err := sess.guard.RequestLeave(target, nil)
	if err != nil {
		return LeaveDecision{}, err
	}
	if allowed {
		return LeaveDecision{Allowed: true}, nil
	}
	return LeaveDecision{Pending: true, Target: target}, nil
}

func (s *Service) ConfirmLeave(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, id)
	if err := sess.guard.Confirm(); err != nil {
		return err
	}
	// подтверждённый уход сбросил форму — снапшот больше не нужен
	if err := s.store.Del(ctx, sessionKey(id)); err != nil {
		s.logger.Error("failed to clear session snapshot",
			slog.String("session", id), slog.String("error", err.Error()))
	}
	return nil
}

func (s *Service) CancelLeave(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(ctx, id).guard.Cancel()
}
