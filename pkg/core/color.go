package core

import (
	"fmt"
	"image/color"
	"math"
)

// DisplayGamma is the gamma used when encoding linear colors for output
const DisplayGamma = 2.2

// Color is a linear RGB value
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color
var Black = Color{}

// White is full intensity on every channel
var White = Color{R: 1, G: 1, B: 1}

// RandomColor draws every channel independently from [0, 1)
func RandomColor(sampler Sampler) Color {
	return RandomColorRange(sampler, 0, 1)
}

// RandomColorRange draws every channel independently from [min, max)
func RandomColorRange(sampler Sampler, min, max float64) Color {
	return Color{
		R: RandomRange(sampler, min, max),
		G: RandomRange(sampler, min, max),
		B: RandomRange(sampler, min, max),
	}
}

// Add returns the channel-wise sum
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channel-wise product (attenuation)
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Divide divides every channel by scalar
func (c Color) Divide(scalar float64) Color {
	return Color{c.R / scalar, c.G / scalar, c.B / scalar}
}

// Lerp blends from c (t=0) to other (t=1)
func (c Color) Lerp(other Color, t float64) Color {
	return c.Multiply(1.0 - t).Add(other.Multiply(t))
}

// AddInPlace accumulates other into c
func (c *Color) AddInPlace(other Color) {
	c.R += other.R
	c.G += other.G
	c.B += other.B
}

// DivideInPlace divides every channel of c by scalar
func (c *Color) DivideInPlace(scalar float64) {
	c.R /= scalar
	c.G /= scalar
	c.B /= scalar
}

// ToRGB8 applies the display transform: gamma 1/2.2, clamp to [0, 0.999],
// scale by 256 and truncate.
func (c Color) ToRGB8() (r, g, b uint8) {
	return encodeChannel(c.R), encodeChannel(c.G), encodeChannel(c.B)
}

func encodeChannel(linear float64) uint8 {
	v := Clamp(math.Pow(linear, 1.0/DisplayGamma), 0.0, 0.999)
	if math.IsNaN(v) {
		return 0
	}
	return uint8(256.0 * v)
}

// RGBA converts the display-encoded color to an opaque color.RGBA
func (c Color) RGBA() color.RGBA {
	r, g, b := c.ToRGB8()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// String formats the display-encoded color as a P3 pixel row
func (c Color) String() string {
	r, g, b := c.ToRGB8()
	return fmt.Sprintf("%d %d %d", r, g, b)
}
