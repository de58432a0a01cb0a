// Package curve provides fixed-point response curves for control inputs.
//
// # Overview
//
// A response curve reshapes a normalized reading (a joystick axis, a throttle,
// a gimbal) before it reaches downstream control logic. curve implements the
// classic shapes with integer arithmetic only: multiplications, additions and
// shifts in a widened intermediate, no floating point and no overflow.
//
// # Quick Start
//
//	import "github.com/gogpu/curve"
//
//	// Quadratic throttle at full strength.
//	c := curve.New[uint8](curve.Power2, curve.WithSaturation(curve.MaxSaturation))
//	out := c.Get(raw)
//
//	// Bipolar stick with a softened cubic.
//	s := curve.NewS16(curve.New[uint16](curve.Power3))
//	out := s.Get(axis)
//
// # Pipeline
//
// Every Get runs the same three stages:
//
//  1. Transfer: the curve's transfer function maps the input over the
//     type's full range (Power2 ≈ x², Power3 ≈ x³, Root2 ≈ √x).
//  2. Saturation: the transferred value is blended linearly with the input.
//     Saturation 0 passes the input through, 255 applies the full curve.
//  3. Clamp: the result is bounded to the curve's limits.
//
// Chained curves apply the transfer function twice in stage 1. Signed curves
// fold a signed reading onto the unsigned domain (2v+1 above zero, -2v below),
// run an unsigned curve and mirror the sign back.
//
// # Transfer functions
//
// Each transfer function is exported per width (Power2U8, Power2U16, ...)
// and guarantees F(0) = 0 and F(max) = max exactly, and is non-decreasing.
// Root2 is computed either by bit search or by Newton-Raphson seeded from a
// leading-zero count. The default is chosen at build time: Newton-Raphson on
// architectures with a native leading-zero instruction, bit search elsewhere
// or when built with the curve_portable tag. Both are always available as
// Root2U8BitSearch, Root2U8Newton and so on.
//
// # Concurrency
//
// Curves hold no locks. Get is a pure function of the input and the current
// configuration; callers that change configuration from another goroutine
// must serialize with Get themselves.
//
// # Tools
//
// cmd/curvetool prints sampled response tables or PNG plots for curves
// given on the command line or in a TOML profile.
package curve

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = ""
)
