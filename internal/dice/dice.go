// Package dice provides the random rolls used by generation and combat. All
// randomness flows through a Source so tests can script exact outcomes.
package dice

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Source is the subset of *rand.Rand the roller needs.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Roller handles dice rolling with a configurable random source
type Roller struct {
	src Source
}

// NewRoller creates a new Roller with the given random source
func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

// NewSeeded creates a Roller backed by math/rand. A seed of 0 uses the clock.
func NewSeeded(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Intn returns a value in [0, n). Non-positive n yields 0.
func (r *Roller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.Intn(n)
}

// Float64 returns a value in [0, 1).
func (r *Roller) Float64() float64 {
	return r.src.Float64()
}

// Range returns a uniform value in [lo, hi] inclusive.
func (r *Roller) Range(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Percent returns a roll in [0, 100).
func (r *Roller) Percent() int {
	return r.Intn(100)
}

// Chance reports success for a percentage chance in [0, 100].
func (r *Roller) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	return r.Percent() < pct
}

// Roll evaluates a simple dice expression and returns the total.
// Supported syntax:
//   - Constants: "5"
//   - Basic dice: "3d6"
//   - One modifier: "1d6+2", "2d8-1"
func (r *Roller) Roll(expression string) (int, error) {
	expr, err := ParseExpr(expression)
	if err != nil {
		return 0, err
	}
	return expr.Roll(r), nil
}

// Expr is a parsed "NdM+K" expression.
type Expr struct {
	Count    int
	Sides    int
	Modifier int
}

// exprRegex matches "3d6", "3d6+2", "1d4-1" or a bare constant.
var exprRegex = regexp.MustCompile(`^(?:(\d+)d(\d+))?([+-]?\d+)?$`)

// ParseExpr parses a dice expression.
func ParseExpr(expression string) (Expr, error) {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(expression)), " ", "")
	if s == "" {
		return Expr{}, fmt.Errorf("empty expression")
	}

	m := exprRegex.FindStringSubmatch(s)
	if m == nil {
		return Expr{}, fmt.Errorf("invalid dice expression: %s", expression)
	}

	var e Expr
	if m[1] != "" {
		e.Count, _ = strconv.Atoi(m[1])
		e.Sides, _ = strconv.Atoi(m[2])
		if e.Count <= 0 || e.Sides <= 0 {
			return Expr{}, fmt.Errorf("invalid dice expression: %s", expression)
		}
	}
	if m[3] != "" {
		mod, err := strconv.Atoi(m[3])
		if err != nil {
			return Expr{}, fmt.Errorf("invalid modifier in %s: %w", expression, err)
		}
		e.Modifier = mod
	}
	return e, nil
}

// Roll evaluates the expression with the given roller.
func (e Expr) Roll(r *Roller) int {
	total := e.Modifier
	for i := 0; i < e.Count; i++ {
		total += r.Intn(e.Sides) + 1
	}
	return total
}

// Min returns the smallest possible result.
func (e Expr) Min() int {
	return e.Count + e.Modifier
}

// Max returns the largest possible result.
func (e Expr) Max() int {
	return e.Count*e.Sides + e.Modifier
}

// String formats the expression in dice notation.
func (e Expr) String() string {
	if e.Count == 0 {
		return strconv.Itoa(e.Modifier)
	}
	s := fmt.Sprintf("%dd%d", e.Count, e.Sides)
	switch {
	case e.Modifier > 0:
		s += "+" + strconv.Itoa(e.Modifier)
	case e.Modifier < 0:
		s += strconv.Itoa(e.Modifier)
	}
	return s
}
