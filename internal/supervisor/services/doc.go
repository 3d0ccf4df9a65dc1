// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

// Package services wraps Citescape components as suture.Service values.
//
// Every service blocks in Serve until its context is canceled and returns
// ctx.Err() on a clean stop, which tells suture not to restart it.
package services
