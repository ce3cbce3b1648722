package models

import (
	"encoding/json"
	"strconv"
)

// Money is a currency amount as delivered by the API. The backend is not
// consistent about whether amounts arrive as JSON strings ("1,234.56") or
// numbers, so Money accepts both and preserves the raw text for parsing.
type Money string

func (m *Money) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = Money(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*m = Money(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m Money) String() string {
	return string(m)
}
