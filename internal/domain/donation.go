package domain

// DonationStatus — строковый токен шага формы, используется для
// round-trip через query-параметр ?status=.
type DonationStatus string

const (
	StatusBlank   DonationStatus = "blank"
	StatusPayment DonationStatus = "payment"
	StatusResult  DonationStatus = "result"
)

const (
	StepBlank   = 1
	StepPayment = 2
	StepResult  = 3

	MaxSteps = 3
)

var StartStatus = StatusBlank

var DonationStatuses = []DonationStatus{StatusBlank, StatusPayment, StatusResult}

var StepToStatus = map[int]DonationStatus{
	StepBlank:   StatusBlank,
	StepPayment: StatusPayment,
	StepResult:  StatusResult,
}

var StatusToStep = map[DonationStatus]int{
	StatusBlank:   StepBlank,
	StatusPayment: StepPayment,
	StatusResult:  StepResult,
}

// DonateStep — метаданные шага для отображения прогресса формы.
type DonateStep struct {
	Step   int            `json:"step"`
	Title  string         `json:"title"`
	Desc   string         `json:"desc"`
	Status DonationStatus `json:"status"`
}

var DonateSteps = []DonateStep{
	{Step: StepBlank, Title: "Анкета", Desc: "Укажите информацию о себе", Status: StatusBlank},
	{Step: StepPayment, Title: "Оплата", Desc: "Выберите способ оплаты и введите сумму", Status: StatusPayment},
	{Step: StepResult, Title: "Результат", Desc: "Посмотрите результаты вашего пожертвования", Status: StatusResult},
}

// SessionSnapshot — формат хранения сеанса в session-store.
// Телефон сохраняется нормализованным, только цифры национальной части.
type SessionSnapshot struct {
	CurrentStep int               `json:"currentStep"`
	BlankForm   BlankFormValues   `json:"blankForm"`
	PaymentForm PaymentFormValues `json:"paymentForm"`
}
