// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

// Package validation wraps go-playground/validator for request bodies.
//
// Constraints live as struct tags on the models:
//
//	type Title struct {
//	    ID     string      `json:"id" validate:"required,max=128"`
//	    Type   ContentType `json:"type" validate:"required,oneof=movie series"`
//	    Rating float64     `json:"rating" validate:"gte=0,lte=10"`
//	}
//
// Handlers call ValidateStruct after decoding and turn a non-nil result into
// a 400 response:
//
//	if verr := validation.ValidateStruct(&title); verr != nil {
//	    rw.BadRequest(verr.Error(), verr.Details())
//	    return
//	}
//
// Error field names use the json tag path ("seasons[0].episodes[1].id"), not
// the Go field name.
package validation
