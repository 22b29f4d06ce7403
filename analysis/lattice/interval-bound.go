package lattice

import (
	"math"
	"strconv"
)

// IntervalBound is an interface implemented by all interval lattice bounds i.e.,
// any FiniteBound value, PlusInfinity and MinusInfinity.
type IntervalBound interface {
	String() string

	// IsInfinite checks whether the interval bound is infinite.
	IsInfinite() bool

	// BINARY RELATIONS

	// Eq checks for interval bound equality.
	Eq(IntervalBound) bool
	// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℤ.
	Leq(IntervalBound) bool
	// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℤ.
	Geq(IntervalBound) bool
	// Lt computes b1 < b2.
	Lt(IntervalBound) bool
	// Gt computes b1 > b2.
	Gt(IntervalBound) bool

	// BINARY OPERATIONS
	// Finite results that do not fit in 64 bits saturate to the
	// infinity of the same sign.

	// Plus computes b1 + b2. The semantics of plus is:
	//	.-----------------------------.
	// 	|   b1   |   b2   |  b1 + b2  |
	// 	|========|========|===========|
	// 	|  ∈  ℤ  |  ∈  ℤ  |  b1 + b2  |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ  |    ∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ  |   -∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|   -∞   |   -∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |    ∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |   -∞   |   panic   |
	// 	 -----------------------------
	Plus(IntervalBound) IntervalBound

	// Minus computes b1 - b2. The semantics of minus is:
	//	.-----------------------------.
	// 	|   b1   |   b2   |  b1 - b2  |
	// 	|========|========|===========|
	// 	|  ∈  ℤ  |  ∈  ℤ  |  b1 - b2  |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ  |    ∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ  |   -∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |  ∈ ℤ,-∞|     ∞     |
	// 	|--------|--------|-----------|
	// 	|   -∞   |  ∈ ℤ,∞ |    -∞     |
	// 	|--------|--------|-----------|
	// 	|  (-)∞  |  (-)∞  |   panic   |
	// 	 -----------------------------
	Minus(IntervalBound) IntervalBound

	// Mult computes b1 * b2. The semantics of multiplication is:
	//	.-----------------------------.
	// 	|   b1   |   b2   |  b1 * b2  |
	// 	|========|========|===========|
	// 	|  ∈  ℤ  |  ∈  ℤ  |  b1 * b2  |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ+ |    ∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ+ |   -∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ- |   -∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ- |    ∞   |    -∞     |
	// 	|--------|--------|-----------|
	// 	|    0   |  (-)∞  |     0     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |    ∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|   -∞   |   -∞   |     ∞     |
	// 	|--------|--------|-----------|
	// 	|    ∞   |   -∞   |    -∞     |
	// 	 -----------------------------
	Mult(IntervalBound) IntervalBound

	// Div computes b1 / b2, truncating towards zero. The semantics of division is:
	//	.-----------------------------.
	// 	|   b1   |   b2   |  b1 / b2  |
	// 	|========|========|===========|
	// 	|  ∈  ℤ  |  ∈ ℤ≠0 |  b1 / b2  |
	// 	|--------|--------|-----------|
	// 	|  (-)∞  |  ∈ ℤ≠0 |   (-)∞    |
	// 	|--------|--------|-----------|
	// 	|  ∈  ℤ  |  (-)∞  |     0     |
	// 	|--------|--------|-----------|
	// 	|  (-)∞  |  (-)∞  |   panic   |
	// 	|--------|--------|-----------|
	// 	|  ∀ b1  |    0   |   panic   |
	// 	 -----------------------------
	Div(IntervalBound) IntervalBound

	// Max computes max(b1, b2).
	Max(IntervalBound) IntervalBound
	// Min computes min(b1, b2).
	Min(IntervalBound) IntervalBound

	// sign is -1, 0 or 1.
	sign() int
}

type (
	// FiniteBound is used to represent finite limits of an interval value.
	FiniteBound int64
	// PlusInfinity represents ∞.
	PlusInfinity struct{}
	// MinusInfinity represents -∞.
	MinusInfinity struct{}
)

// infinity yields the infinite bound with the given sign.
func infinity(sign int) IntervalBound {
	if sign < 0 {
		return MinusInfinity{}
	}
	return PlusInfinity{}
}

func signOf(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// IsInfinite is false for the finite bound.
func (FiniteBound) IsInfinite() bool {
	return false
}

func (b FiniteBound) String() string {
	return strconv.FormatInt(int64(b), 10)
}

func (b FiniteBound) sign() int {
	return signOf(int64(b))
}

// Eq compares for equality with another bound. Two finite bounds
// are equal if their underlying values are equal.
func (b1 FiniteBound) Eq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 == b2
	}
	return false
}

// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℤ.
func (b1 FiniteBound) Leq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 <= b2
	case PlusInfinity:
		return true
	}
	return false
}

// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℤ.
func (b1 FiniteBound) Geq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 >= b2
	case MinusInfinity:
		return true
	}
	return false
}

// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℤ.
func (b1 FiniteBound) Lt(b2 IntervalBound) bool {
	return !b1.Geq(b2)
}

// Gt computes b1 > b2. The semantics is -∞ < c < ∞, where c ∈ ℤ.
func (b1 FiniteBound) Gt(b2 IntervalBound) bool {
	return !b1.Leq(b2)
}

func (b1 FiniteBound) Plus(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		x, y := int64(b1), int64(b2)
		if s := x + y; (s > x) == (y > 0) {
			return FiniteBound(s)
		}
		return infinity(signOf(x))
	}
	return b2
}

func (b1 FiniteBound) Minus(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		x, y := int64(b1), int64(b2)
		if s := x - y; (s < x) == (y > 0) {
			return FiniteBound(s)
		}
		if x < 0 {
			return MinusInfinity{}
		}
		return PlusInfinity{}
	}
	return infinity(-b2.sign())
}

func (b1 FiniteBound) Mult(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		x, y := int64(b1), int64(b2)
		if x == 0 || y == 0 {
			return FiniteBound(0)
		}
		p := x * y
		if p/y == x && !(x == -1 && y == math.MinInt64) && !(y == -1 && x == math.MinInt64) {
			return FiniteBound(p)
		}
		return infinity(signOf(x) * signOf(y))
	}
	if b1 == 0 {
		return FiniteBound(0)
	}
	return infinity(b1.sign() * b2.sign())
}

func (b1 FiniteBound) Div(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		if b2 == 0 {
			panic("division by 0")
		}
		if b1 == math.MinInt64 && b2 == -1 {
			return PlusInfinity{}
		}
		return b1 / b2
	}
	return FiniteBound(0)
}

func (b1 FiniteBound) Max(b2 IntervalBound) IntervalBound {
	if b1.Lt(b2) {
		return b2
	}
	return b1
}

func (b1 FiniteBound) Min(b2 IntervalBound) IntervalBound {
	if b1.Gt(b2) {
		return b2
	}
	return b1
}

// IsInfinite is true for ∞.
func (PlusInfinity) IsInfinite() bool {
	return true
}

func (PlusInfinity) String() string {
	return "+Inf"
}

func (PlusInfinity) sign() int {
	return 1
}

// Eq checks for interval bound equality.
func (PlusInfinity) Eq(b2 IntervalBound) bool {
	_, ok := b2.(PlusInfinity)
	return ok
}

// Leq computes ∞ ≤ b.
func (PlusInfinity) Leq(b2 IntervalBound) bool {
	_, ok := b2.(PlusInfinity)
	return ok
}

// Geq computes ∞ ≥ b. It is always true as ∞ is the largest possible bound.
func (PlusInfinity) Geq(IntervalBound) bool {
	return true
}

// Lt computes ∞ < b. It is always false as ∞ is the largest possible bound.
func (PlusInfinity) Lt(IntervalBound) bool {
	return false
}

// Gt computes ∞ > b.
func (PlusInfinity) Gt(b2 IntervalBound) bool {
	_, ok := b2.(PlusInfinity)
	return !ok
}

func (PlusInfinity) Plus(b2 IntervalBound) IntervalBound {
	if _, ok := b2.(MinusInfinity); ok {
		panic("∞ + (-∞)")
	}
	return PlusInfinity{}
}

func (PlusInfinity) Minus(b2 IntervalBound) IntervalBound {
	if _, ok := b2.(PlusInfinity); ok {
		panic("∞ - ∞")
	}
	return PlusInfinity{}
}

func (PlusInfinity) Mult(b2 IntervalBound) IntervalBound {
	if b2.sign() == 0 {
		return FiniteBound(0)
	}
	return infinity(b2.sign())
}

func (PlusInfinity) Div(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		if b2 == 0 {
			panic("∞ / 0")
		}
		return infinity(b2.sign())
	}
	panic("∞ / ∞")
}

// Max computes max(∞, b) = ∞.
func (PlusInfinity) Max(IntervalBound) IntervalBound {
	return PlusInfinity{}
}

// Min computes min(∞, b) = b.
func (PlusInfinity) Min(b2 IntervalBound) IntervalBound {
	return b2
}

// IsInfinite is true for -∞.
func (MinusInfinity) IsInfinite() bool {
	return true
}

func (MinusInfinity) String() string {
	return "-Inf"
}

func (MinusInfinity) sign() int {
	return -1
}

// Eq computes -∞ = b.
func (MinusInfinity) Eq(b2 IntervalBound) bool {
	_, ok := b2.(MinusInfinity)
	return ok
}

// Leq computes -∞ ≤ b. It is always true as -∞ is the smallest possible bound.
func (MinusInfinity) Leq(IntervalBound) bool {
	return true
}

// Geq computes -∞ ≥ b.
func (MinusInfinity) Geq(b2 IntervalBound) bool {
	_, ok := b2.(MinusInfinity)
	return ok
}

// Lt computes -∞ < b.
func (MinusInfinity) Lt(b2 IntervalBound) bool {
	_, ok := b2.(MinusInfinity)
	return !ok
}

// Gt computes -∞ > b. It is always false as -∞ is the smallest possible bound.
func (MinusInfinity) Gt(IntervalBound) bool {
	return false
}

func (MinusInfinity) Plus(b2 IntervalBound) IntervalBound {
	if _, ok := b2.(PlusInfinity); ok {
		panic("-∞ + ∞")
	}
	return MinusInfinity{}
}

func (MinusInfinity) Minus(b2 IntervalBound) IntervalBound {
	if _, ok := b2.(MinusInfinity); ok {
		panic("-∞ - (-∞)")
	}
	return MinusInfinity{}
}

func (MinusInfinity) Mult(b2 IntervalBound) IntervalBound {
	if b2.sign() == 0 {
		return FiniteBound(0)
	}
	return infinity(-b2.sign())
}

func (MinusInfinity) Div(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		if b2 == 0 {
			panic("-∞ / 0")
		}
		return infinity(-b2.sign())
	}
	panic("-∞ / ∞")
}

// Max computes max(-∞, b) = b.
func (MinusInfinity) Max(b2 IntervalBound) IntervalBound {
	return b2
}

// Min computes min(-∞, b) = -∞.
func (MinusInfinity) Min(IntervalBound) IntervalBound {
	return MinusInfinity{}
}
