package models

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// FormNumber is a numeric form field. It accepts a JSON number or a JSON
// string and keeps the raw text.
type FormNumber string

func (n *FormNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = FormNumber(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = FormNumber(num.String())
	return nil
}

// Float reads the longest numeric prefix, so "1200.50 USD" is 1200.5.
// Input without one, or overflowing to infinity, is 0.
func (n FormNumber) Float() float64 {
	m := leadingNumber.FindString(strings.TrimSpace(string(n)))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func (n FormNumber) IsZero() bool { return strings.TrimSpace(string(n)) == "" }
