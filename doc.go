//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1model is a bit-exact golden model of the SHA-1
// compression function. The model is used for validating alternative
// implementations, such as gate-level circuits, against the known
// answer vectors and against random blocks.
//
// The model is organized into the following packages:
//
//	sha1      the compression function and the block engine
//	trace     round tracers for diagnostics
//	vectors   test vectors, padding, and the random block generator
//	circuit   Bristol-fashion boolean circuits
//	netlist   gate-level circuit generator
//	validate  implementation validator
//
// The vectors under testsuite/ are run with "go test".
package sha1model
