package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/Cirillio/DonationApp/internal/domain"
)

// Rule — стабильный идентификатор правила валидации, по которому
// клиент различает причину отказа независимо от текста сообщения.
type Rule string

const (
	RuleInvalidPhone        Rule = "InvalidPhone"
	RuleNameTooShort        Rule = "NameTooShort"
	RuleNameTooLong         Rule = "NameTooLong"
	RuleNameInvalidChars    Rule = "NameInvalidChars"
	RuleDateFormatInvalid   Rule = "DateFormatInvalid"
	RuleDateDoesNotExist    Rule = "DateDoesNotExist"
	RuleUnderageDonor       Rule = "UnderageDonor"
	RuleDonorTooOld         Rule = "DonorTooOld"
	RuleAmountBelowMinimum  Rule = "AmountBelowMinimum"
	RulePaymentTypeRequired Rule = "PaymentTypeRequired"
	RuleNoteTooLong         Rule = "NoteTooLong"
)

// FieldError — первая сработавшая ошибка по полю.
type FieldError struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// Errors — карта поле → ошибка. nil означает успех.
type Errors map[string]FieldError

type ruleInfo struct {
	rule    Rule
	message string
}

// Теги проверяются слева направо, фиксируется первое падение —
// порядок тегов в domain-структурах и есть порядок правил.
var tagRules = map[string]ruleInfo{
	"phone_required": {RuleInvalidPhone, "Телефон обязателен для заполнения."},
	"phone_valid":    {RuleInvalidPhone, "Номер указан неверно."},
	"name_min":       {RuleNameTooShort, "Имя должно быть не короче 3 символов."},
	"name_max":       {RuleNameTooLong, "Имя должно быть не длиннее 50 символов."},
	"name_chars":     {RuleNameInvalidChars, "Имя может содержать только буквы, пробелы и дефис."},
	"birth_format":   {RuleDateFormatInvalid, "Введите дату полностью (ДД.ММ.ГГГГ)."},
	"birth_exists":   {RuleDateDoesNotExist, "Такой даты не существует."},
	"birth_adult":    {RuleUnderageDonor, "Вам должно быть не менее 18 лет."},
	"birth_max_age":  {RuleDonorTooOld, "Возраст не может быть больше 100 лет."},
	"amount_min":     {RuleAmountBelowMinimum, "Указанная сумма меньше минимальной."},
	"payment_type":   {RulePaymentTypeRequired, "Пожалуйста, укажите способ оплаты."},
	"note_max":       {RuleNoteTooLong, "Максимум 200 символов."},
}

var birthRegex = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Validator валидирует подформы целиком и возвращает карту ошибок.
// Часы инъектируются, чтобы проверки возраста были детерминированы в тестах.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

type Option func(*Validator)

func WithNow(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

func New(opts ...Option) *Validator {
	val := &Validator{
		v:   validator.New(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(val)
	}

	// Имена полей в ошибках — из json-тегов.
	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	val.register()

	return val
}

func (val *Validator) register() {
	must := func(tag string, fn validator.Func) {
		if err := val.v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	must("phone_required", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	must("phone_valid", func(fl validator.FieldLevel) bool {
		form, ok := blankParent(fl)
		if !ok {
			return false
		}
		spec := domain.GetPhoneSpec(form.PhoneCountry)
		digits := domain.NormalizePhone(fl.Field().String())
		return len(digits) == spec.NationalDigits
	})

	must("name_min", func(fl validator.FieldLevel) bool {
		trimmed := strings.TrimSpace(fl.Field().String())
		return trimmed == "" || len([]rune(trimmed)) >= 3
	})

	must("name_max", func(fl validator.FieldLevel) bool {
		return len([]rune(strings.TrimSpace(fl.Field().String()))) <= 50
	})

	must("name_chars", func(fl validator.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsLetter(r) && r != ' ' && r != '-' {
				return false
			}
		}
		return true
	})

	must("birth_format", func(fl validator.FieldLevel) bool {
		return birthRegex.MatchString(fl.Field().String())
	})

	must("birth_exists", func(fl validator.FieldLevel) bool {
		_, ok := ParseBirth(fl.Field().String())
		return ok
	})

	must("birth_adult", func(fl validator.FieldLevel) bool {
		birth, ok := ParseBirth(fl.Field().String())
		if !ok {
			return false
		}
		return AgeAt(birth, val.now()) >= 18
	})

	must("birth_max_age", func(fl validator.FieldLevel) bool {
		birth, ok := ParseBirth(fl.Field().String())
		if !ok {
			return false
		}
		return AgeAt(birth, val.now()) <= 100
	})

	must("amount_min", func(fl validator.FieldLevel) bool {
		return fl.Field().Float() >= domain.PaymentMinAmount
	})

	must("payment_type", func(fl validator.FieldLevel) bool {
		t := domain.PaymentType(fl.Field().String())
		for _, known := range domain.PaymentTypes {
			if t == known {
				return true
			}
		}
		return false
	})

	must("note_max", func(fl validator.FieldLevel) bool {
		return len([]rune(strings.TrimSpace(fl.Field().String()))) <= domain.NoteMaxLength
	})
}

func blankParent(fl validator.FieldLevel) (domain.BlankFormValues, bool) {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	form, ok := parent.Interface().(domain.BlankFormValues)
	return form, ok
}

// ValidateBlank прогоняет всю анкету, возвращает nil при успехе.
func (val *Validator) ValidateBlank(form domain.BlankFormValues) Errors {
	return val.collect(val.v.Struct(form))
}

// ValidatePayment прогоняет всю форму оплаты, возвращает nil при успехе.
func (val *Validator) ValidatePayment(form domain.PaymentFormValues) Errors {
	return val.collect(val.v.Struct(form))
}

func (val *Validator) collect(err error) Errors {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError не бывает для наших структур,
		// но на всякий случай не роняем процесс.
		return Errors{"_form": {Rule: "Invalid", Message: err.Error()}}
	}

	errs := make(Errors, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, exists := errs[field]; exists {
			continue
		}
		info, known := tagRules[fe.Tag()]
		if !known {
			continue
		}
		errs[field] = FieldError{Rule: info.rule, Message: info.message}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ParseBirth разбирает строку ДД.ММ.ГГГГ и проверяет календарную
// корректность: конструирование даты и обратное чтение должны
// дать те же день/месяц/год (отсекает 31.02.2000 и подобное).
func ParseBirth(s string) (time.Time, bool) {
	if !birthRegex.MatchString(s) {
		return time.Time{}, false
	}
	parts := strings.Split(s, ".")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

// AgeAt считает полные годы с точностью до календарного дня:
// пока день рождения в текущем году не наступил, год не засчитывается.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
