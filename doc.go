// Package dualroot is your in-memory toolkit for automatic
// differentiation and derivative-driven root finding — from dual-number
// primitives to a parallel scan-and-refine root hunter.
//
// 🚀 What is dualroot?
//
//	A small, generic library that brings together:
//		• Dual numbers: exact first derivatives carried through arithmetic
//		• Second order: Dual2 tracks f, f′ and f″ in one pass
//		• Newton–Raphson: derivative-powered refinement of a single guess
//		• Bracket scanning: uniform sign-change sweeps over an interval
//		• Root search: scan + refine, every root in one call
//
// ✨ Why choose dualroot?
//
//   - No symbolic math — write f as plain Go, derivatives come for free
//   - No finite differences — machine-precision slopes, no step tuning
//   - Generic – float64 and float32 through one type parameter
//   - Observable – inject a zap.Logger and watch every iteration
//
// Under the hood, everything is organized under four subpackages:
//
//	dual/       — Number and Dual2 types, elementary functions, Epsilon
//	newton/     — Refine: Newton–Raphson with patience & tolerance knobs
//	bisect/     — Scan: resolution-driven sign-change bracketing
//	rootsearch/ — Search: the full pipeline, sequential or parallel
//
// Quick sketch of the pipeline:
//
//	[lower ──┬──┬──┬──┬── upper]      scan: sample f at uniform steps
//	          └flip┘                  bracket every sign change
//	            ↓                     seed Newton inside the bracket
//	            x*                    keep roots that stay in bounds
//
// Dive into README.md and examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/dualroot
package dualroot
