package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnitMismatch  = errors.New("layout: unit mismatch")
	ErrParse         = errors.New("layout: malformed unit literal")
	ErrDivideByZero  = errors.New("layout: division by zero")
	ErrConfiguration = errors.New("layout: invalid configuration")
)

// Kind specifies how a Measurement is interpreted.
type Kind uint8

const (
	Pixel          Kind = iota // Absolute pixels
	Percent                    // Percentage of the available space
	Flex                       // Weighted share of the space left by fixed siblings
	ViewportWidth              // Percentage of the viewport width
	ViewportHeight             // Percentage of the viewport height
)

var suffixes = map[string]Kind{
	"px": Pixel,
	"%":  Percent,
	"f":  Flex,
	"vw": ViewportWidth,
	"vh": ViewportHeight,
}

func (k Kind) String() string {
	switch k {
	case Pixel:
		return "px"
	case Percent:
		return "%"
	case Flex:
		return "f"
	case ViewportWidth:
		return "vw"
	case ViewportHeight:
		return "vh"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Measurement is a scalar tagged with a unit kind.
type Measurement struct {
	Value float64
	Kind  Kind
}

func Px(v float64) Measurement  { return Measurement{Value: v, Kind: Pixel} }
func Pct(v float64) Measurement { return Measurement{Value: v, Kind: Percent} }
func Fr(v float64) Measurement  { return Measurement{Value: v, Kind: Flex} }
func Vw(v float64) Measurement  { return Measurement{Value: v, Kind: ViewportWidth} }
func Vh(v float64) Measurement  { return Measurement{Value: v, Kind: ViewportHeight} }

// Parse reads a literal of the form "<number> <suffix>", e.g. "30 %" or "1 f".
// A bare number is read as pixels.
func Parse(s string) (Measurement, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Px(v), nil
	}
	num, suffix, ok := strings.Cut(s, " ")
	if !ok {
		return Measurement{}, fmt.Errorf("%w: %q: missing separator", ErrParse, s)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Measurement{}, fmt.Errorf("%w: %q: bad number", ErrParse, s)
	}
	kind, ok := suffixes[strings.TrimSpace(suffix)]
	if !ok {
		return Measurement{}, fmt.Errorf("%w: %q: unknown suffix %q", ErrParse, s, suffix)
	}
	return Measurement{Value: v, Kind: kind}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Measurement {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Resolve returns the absolute pixel size of m given the available space and
// the viewport dimension it refers to. The result never exceeds available.
//
// Flex resolves to all of available; the owning Sequence is responsible for
// handing each flex child its share before calling Render.
func (m Measurement) Resolve(available, viewportAxis float64) float64 {
	switch m.Kind {
	case Pixel:
		return min(m.Value, available)
	case Percent:
		return min(available, clampPercent(m.Value)*available/100)
	case ViewportWidth, ViewportHeight:
		return min(available, clampPercent(m.Value)*viewportAxis/100)
	default:
		return available
	}
}

func clampPercent(v float64) float64 {
	return max(0, min(v, 100))
}

func (m Measurement) check(other Measurement) error {
	if m.Kind != other.Kind {
		return fmt.Errorf("%w: %s and %s", ErrUnitMismatch, m.Kind, other.Kind)
	}
	return nil
}

func (m Measurement) Add(other Measurement) (Measurement, error) {
	if err := m.check(other); err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: m.Value + other.Value, Kind: m.Kind}, nil
}

func (m Measurement) Sub(other Measurement) (Measurement, error) {
	if err := m.check(other); err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: m.Value - other.Value, Kind: m.Kind}, nil
}

func (m Measurement) Mul(other Measurement) (Measurement, error) {
	if err := m.check(other); err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: m.Value * other.Value, Kind: m.Kind}, nil
}

func (m Measurement) Div(other Measurement) (Measurement, error) {
	if err := m.check(other); err != nil {
		return Measurement{}, err
	}
	if other.Value == 0 {
		return Measurement{}, ErrDivideByZero
	}
	return Measurement{Value: m.Value / other.Value, Kind: m.Kind}, nil
}

// The N variants promote a bare number to m's kind, so they cannot mismatch.

func (m Measurement) AddN(v float64) Measurement {
	return Measurement{Value: m.Value + v, Kind: m.Kind}
}

func (m Measurement) SubN(v float64) Measurement {
	return Measurement{Value: m.Value - v, Kind: m.Kind}
}

func (m Measurement) MulN(v float64) Measurement {
	return Measurement{Value: m.Value * v, Kind: m.Kind}
}

func (m Measurement) DivN(v float64) (Measurement, error) {
	return m.Div(Measurement{Value: v, Kind: m.Kind})
}

func (m Measurement) String() string {
	return strconv.FormatFloat(m.Value, 'f', -1, 64) + m.Kind.String()
}
