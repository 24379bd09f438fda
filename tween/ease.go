// Package tween interpolates scalar values over frame-stepped time
package tween

import "math"

// Ease maps linear progress in [0,1] to eased progress
type Ease func(p float64) float64

// Linear applies no easing
func Linear(p float64) float64 { return p }

// Power1In is a quadratic ease-in
func Power1In(p float64) float64 { return p * p }

// Power1Out is a quadratic ease-out
func Power1Out(p float64) float64 { return 1 - (1-p)*(1-p) }

// Power2In is a cubic ease-in
func Power2In(p float64) float64 { return p * p * p }

// Power2Out is a cubic ease-out
func Power2Out(p float64) float64 { return 1 - math.Pow(1-p, 3) }

// ByName resolves an ease name, falling back to Linear
func ByName(name string) Ease {
	switch name {
	case "power1.in":
		return Power1In
	case "power1.out":
		return Power1Out
	case "power2.in":
		return Power2In
	case "power2.out":
		return Power2Out
	default:
		return Linear
	}
}
