// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// TrackingCodeType is the natural key of a TrackingCode.
type TrackingCodeType string

const (
	TrackingCodeMetaPixel     TrackingCodeType = "meta_pixel"
	TrackingCodeGoogleAdsense TrackingCodeType = "google_adsense"
)

// TrackingCodeTypes lists every supported tracking integration.
var TrackingCodeTypes = []TrackingCodeType{TrackingCodeMetaPixel, TrackingCodeGoogleAdsense}

// TrackingCode is a third-party script snippet. Pages inject active codes;
// the shop only stores and serves them.
type TrackingCode struct {
	ID        int64            `json:"id"`
	Type      TrackingCodeType `json:"type"`
	Code      string           `json:"code"`
	IsActive  bool             `json:"isActive"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
