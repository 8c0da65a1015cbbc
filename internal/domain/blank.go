package domain

// BlankFormValues — анкета жертвователя (первый шаг формы).
// Phone хранится как национальная часть номера без кода страны.
type BlankFormValues struct {
	Phone        string       `json:"phone" validate:"phone_required,phone_valid"`
	PhoneCountry PhoneCountry `json:"phoneCountry"`
	Name         string       `json:"name" validate:"name_min,name_max,name_chars"`
	Birth        string       `json:"birth" validate:"birth_format,birth_exists,birth_adult,birth_max_age"`
	IsGroup      bool         `json:"isGroup"`
}

func DefaultBlankForm() BlankFormValues {
	return BlankFormValues{
		Phone:        "",
		PhoneCountry: DefaultPhoneSpec.ID,
		Name:         "",
		Birth:        "",
		IsGroup:      false,
	}
}
