// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the canonical records stored by the shop. Field
// names are camelCase in JSON; the storage layer owns any column mapping.
package models

import "github.com/shopspring/decimal"

func init() {
	// Prices and totals travel as JSON numbers for existing callers.
	decimal.MarshalJSONWithoutQuotes = true
}
