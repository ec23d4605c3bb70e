package service

// Status is the lifecycle state of a service as shown on the booking form.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusDraft    Status = "draft"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDraft, StatusArchived:
		return true
	default:
		return false
	}
}

// OptionType discriminates how an option is rendered and how its submitted
// value is validated and priced.
type OptionType string

const (
	TypeCheckbox OptionType = "checkbox"
	TypeNumber   OptionType = "number"
	TypeQuantity OptionType = "quantity"
	TypeSelect   OptionType = "select"
	TypeRadio    OptionType = "radio"
	TypeText     OptionType = "text"
	TypeTextarea OptionType = "textarea"
)

func (t OptionType) String() string {
	return string(t)
}

func (t OptionType) IsValid() bool {
	switch t {
	case TypeCheckbox, TypeNumber, TypeQuantity, TypeSelect, TypeRadio, TypeText, TypeTextarea:
		return true
	default:
		return false
	}
}

// PriceType selects the pricing rule applied to an option's submitted value.
type PriceType string

const (
	PriceNone       PriceType = "none"
	PriceFixed      PriceType = "fixed"
	PricePercentage PriceType = "percentage"
	PriceMultiply   PriceType = "multiply"
	PriceChoice     PriceType = "choice"
)

func (p PriceType) String() string {
	return string(p)
}

func (p PriceType) IsValid() bool {
	switch p {
	case PriceNone, PriceFixed, PricePercentage, PriceMultiply, PriceChoice:
		return true
	default:
		return false
	}
}
