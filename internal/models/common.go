package models

import "strings"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool { return s == StatusActive || s == StatusInactive }

type Address struct {
	Street  string `json:"street" yaml:"street"`
	City    string `json:"city" yaml:"city"`
	State   string `json:"state" yaml:"state"`
	ZipCode string `json:"zipCode" yaml:"zipCode"`
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
