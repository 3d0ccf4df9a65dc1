// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

// Package recommend implements the country-parameterized city recommendation
// engine.
//
// # Architecture
//
// One Engine serves one country. Every country runs the same pipeline; the
// differences live entirely in its Bundle, a static table of base weights,
// zone families, adjustment rules and bonus rules:
//
//	Profile ──► Prefilter ──► AdaptWeights ──► ScoreCity ──► rank ──► Envelope
//	            (zones,        (multiplicative   (coverage-      (stable
//	             budget)        rules, sum = 1)   renormalized,   sort,
//	                                              bonuses)        top N)
//
//   - Prefilter narrows the catalog family by family in declared order and
//     never empties a non-empty input: a family that would leave fewer than
//     its minimum is skipped.
//   - AdaptWeights copies the base weights, applies every matching rule in
//     order and normalizes the result to sum to 1.
//   - ScoreCity divides the weighted sum by the weight of the criteria the
//     city actually defines, so a missing criterion neither helps nor hurts.
//     Bonus factors are applied afterwards and the score is clamped to [0,1].
//
// # Design Principles
//
//   - Deterministic: no randomness; ties keep catalog order
//   - Pure: a request never mutates the catalog, the bundle or the engine;
//     per-request annotations (the soft lifestyle bonus) live in a map keyed
//     by city id
//   - Auditable: rules are data, and every soft-skip is logged and counted
//
// # Usage
//
//	registry := recommend.NewRegistry(logger)
//	if _, err := registry.RegisterFS(countries.Spain(), catalog.Embedded(), "spain.json"); err != nil {
//	    return err // the country is not registered
//	}
//
//	engine, err := registry.Get("spain")
//	if err != nil {
//	    return err // ErrUnknownCountry
//	}
//	env := engine.Recommend(ctx, recommend.Profile{
//	    "spain_climate": recommend.Scalar("mediterranean_mild"),
//	}, 3)
//
// Recommend never returns an error: failures become an Envelope with status
// "error". Evaluate returns the same envelope together with the error for
// callers that need to classify failures.
//
// # Thread Safety
//
// Engines and the Registry are safe for concurrent use. Engines are
// immutable after construction; the Registry guards its map with a RWMutex.
package recommend
