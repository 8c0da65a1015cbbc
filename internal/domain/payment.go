package domain

type PaymentType string

const (
	PaymentTypeSBP      PaymentType = "sbp"
	PaymentTypeBankcard PaymentType = "bankcard"
)

var PaymentTypes = []PaymentType{PaymentTypeSBP, PaymentTypeBankcard}

const (
	PaymentMinAmount = 100
	NoteMaxLength    = 200
)

// PaymentFormValues — форма оплаты (второй шаг формы).
// Amount = 0 означает, что сумма ещё не введена.
type PaymentFormValues struct {
	Amount float64     `json:"amount" validate:"amount_min"`
	Type   PaymentType `json:"type" validate:"payment_type"`
	Note   string      `json:"note" validate:"note_max"`
}

func DefaultPaymentForm() PaymentFormValues {
	return PaymentFormValues{
		Amount: 0,
		Type:   "",
		Note:   "",
	}
}

type PaymentMethod struct {
	Type PaymentType `json:"type"`
	Name string      `json:"name"`
}

var PaymentMethods = []PaymentMethod{
	{Type: PaymentTypeSBP, Name: "СБП"},
	{Type: PaymentTypeBankcard, Name: "Картой онлайн"},
}

// Кнопки-пресеты суммы; свободный ввод тоже разрешён.
var PaymentAmounts = []float64{100, 500, 1000, 2500, 5000, 10000}

// PaymentResult — итог обработки платежа.
type PaymentResult struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId,omitempty"`
}
