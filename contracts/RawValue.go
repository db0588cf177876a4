package contracts

import (
	"strconv"
	"strings"

	json "github.com/bytedance/sonic"
)

type ValueKind uint8

const (
	NullValue ValueKind = iota
	TextValue
	NumericValue
	CurrencyValue
	BooleanValue
)

// CurrencySeparator splits the composite currency token "<amount>|<code>"
const CurrencySeparator = "|"

// RawValue is a stored cell value as it lives in the row data.
// For CurrencyValue, Text holds the amount text and Code the currency code.
type RawValue struct {
	Kind   ValueKind
	Text   string
	Number float64
	Code   string
	Bool   bool
}

type RowData map[string]RawValue

func NullRawValue() RawValue {
	return RawValue{Kind: NullValue}
}

func NewTextValue(text string) RawValue {
	return RawValue{Kind: TextValue, Text: text}
}

func NewNumericValue(number float64) RawValue {
	return RawValue{Kind: NumericValue, Number: number}
}

func NewCurrencyValue(amount string, code string) RawValue {
	return RawValue{Kind: CurrencyValue, Text: amount, Code: code}
}

func NewBooleanValue(value bool) RawValue {
	return RawValue{Kind: BooleanValue, Bool: value}
}

func (v RawValue) IsNull() bool {
	return v.Kind == NullValue
}

// String returns the value the way it is stored and shown in the editor.
func (v RawValue) String() string {
	switch v.Kind {
	case TextValue:
		return v.Text
	case NumericValue:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case CurrencyValue:
		return v.Text + CurrencySeparator + v.Code
	case BooleanValue:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

func (v RawValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case NumericValue:
		return json.Marshal(v.Number)
	case BooleanValue:
		return json.Marshal(v.Bool)
	case TextValue, CurrencyValue:
		return json.Marshal(v.String())
	default:
		return []byte("null"), nil
	}
}

func (v *RawValue) UnmarshalJSON(data []byte) error {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	switch typed := decoded.(type) {
	case nil:
		*v = NullRawValue()
	case bool:
		*v = NewBooleanValue(typed)
	case float64:
		*v = NewNumericValue(typed)
	case string:
		*v = ClassifyStoredText(typed)
	default:
		*v = NewTextValue(string(data))
	}

	return nil
}

// ClassifyStoredText recognizes the composite currency token inside a stored string.
func ClassifyStoredText(text string) RawValue {
	if amount, code, found := strings.Cut(text, CurrencySeparator); found {
		return NewCurrencyValue(amount, code)
	}

	return NewTextValue(text)
}
