// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package validate holds the pure field checks shared by every entity in the
// shop. None of the functions here have side effects; callers combine them
// with a Checker to get a deterministic first-failure report.
package validate

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// emailPattern accepts local@domain.tld with no whitespace and at least one
// dot after the @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequireNonEmpty reports whether s has at least one non-space character.
func RequireNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidEmail reports whether s looks like an email address. Surrounding
// whitespace is not tolerated; normalize before calling.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsOneOf is a case-sensitive membership test.
func IsOneOf[T comparable](v T, allowed ...T) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// IsIntInRange reports whether min <= v <= max.
func IsIntInRange(v, min, max int) bool {
	return v >= min && v <= max
}

// IsPositive reports whether d is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.IsPositive()
}

// maxMoney is the smallest amount a NUMERIC(12,2) column cannot hold.
var maxMoney = decimal.New(1, 10)

// IsMoney reports whether d is a positive amount in whole cents that fits
// NUMERIC(12,2).
func IsMoney(d decimal.Decimal) bool {
	return d.IsPositive() && d.Equal(d.Truncate(2)) && d.LessThan(maxMoney)
}

// IsInt32 reports whether v fits an INTEGER column.
func IsInt32(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// FieldError describes the first check that failed for a payload.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Code + ": " + e.Message
}

// Checker runs checks in the order they are added and remembers only the
// first failure. Later checks are skipped once one has failed, which keeps
// the reported error stable for a given payload.
type Checker struct {
	err *FieldError
}

// Check records a failure for field when ok is false and no earlier check
// has failed.
func (c *Checker) Check(ok bool, field, code, message string) *Checker {
	if c.err == nil && !ok {
		c.err = &FieldError{Field: field, Code: code, Message: message}
	}
	return c
}

// Failed reports whether any check has failed so far.
func (c *Checker) Failed() bool {
	return c.err != nil
}

// Err returns the first failure, or nil.
func (c *Checker) Err() *FieldError {
	return c.err
}
