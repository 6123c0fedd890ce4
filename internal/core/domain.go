package core

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Expense is one recorded spending event. JSON field names match the
	// on-disk record file.
	Expense struct {
		ID          int64  `json:"id"`
		Amount      Money  `json:"monto"`
		Category    string `json:"categoria"`
		Description string `json:"descripcion"`
		Date        Date   `json:"fecha"`
	}
)

var (
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyDescription   = errors.New("empty description")
	ErrInvalidDescription = errors.New("description may only contain letters and spaces")
	ErrInvalidID          = errors.New("invalid id")
)

const maxDescriptionLen = 200

var descriptionPattern = regexp.MustCompile(`^[\p{L}\s]+$`)

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateDescription accepts letters (accented ones included) and spaces only.
func ValidateDescription(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(s) > maxDescriptionLen {
		return errors.New("description too long (max 200 characters)")
	}
	if !descriptionPattern.MatchString(s) {
		return ErrInvalidDescription
	}
	return nil
}

// Validate checks an expense at entry time. Records read back from storage
// are never re-validated.
func (e Expense) Validate() error {
	if e.ID <= 0 {
		return ErrInvalidID
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	return ValidateDescription(e.Description)
}

// NextID returns max(existing ids)+1, or 1 for an empty list.
func NextID(items []Expense) int64 {
	var maxID int64
	for _, e := range items {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}
