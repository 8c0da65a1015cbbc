package domain

import "strings"

type PhoneCountry string

const (
	PhoneCountryRU PhoneCountry = "RU"
	PhoneCountryTJ PhoneCountry = "TJ"
)

// PhoneSpec описывает телефонный план страны: код набора и длину
// национальной части номера.
type PhoneSpec struct {
	ID             PhoneCountry `json:"id"`
	Name           string       `json:"name"`
	Code           string       `json:"code"`
	NationalDigits int          `json:"nationalDigits"`
}

var PhoneSpecs = []PhoneSpec{
	{ID: PhoneCountryRU, Name: "Россия", Code: "+7", NationalDigits: 10},
	{ID: PhoneCountryTJ, Name: "Таджикистан", Code: "+992", NationalDigits: 9},
}

var DefaultPhoneSpec = PhoneSpecs[0]

// GetPhoneSpec возвращает план страны, для неизвестного id — план по умолчанию.
func GetPhoneSpec(id PhoneCountry) PhoneSpec {
	for _, spec := range PhoneSpecs {
		if spec.ID == id {
			return spec
		}
	}
	return DefaultPhoneSpec
}

// NormalizePhone убирает всё, кроме цифр (пробелы, скобки, дефисы).
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
