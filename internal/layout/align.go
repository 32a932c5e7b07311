package layout

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // [(1)(2)(3)      ]
	JustifyCenter                      // [   (1)(2)(3)   ]
	JustifyEnd                         // [      (1)(2)(3)]
	JustifySpaceAround                 // [  (1)  (2)  (3)  ]
	JustifySpaceBetween                // [(1)    (2)    (3)]
)

var justifyNames = [...]string{"start", "center", "end", "space_around", "space_between"}

func (j Justify) String() string {
	if int(j) < len(justifyNames) {
		return justifyNames[j]
	}
	return "unknown"
}

// ParseJustify maps a policy name such as "space_between" to its Justify.
func ParseJustify(s string) (Justify, bool) {
	for i, name := range justifyNames {
		if name == s {
			return Justify(i), true
		}
	}
	return JustifyStart, false
}

// Align specifies how a child is positioned on the cross axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

func (a Align) String() string {
	return a.justify().String()
}

// ParseAlign maps "start", "center" or "end" to its Align.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	}
	return AlignStart, false
}

func (a Align) justify() Justify {
	switch a {
	case AlignCenter:
		return JustifyCenter
	case AlignEnd:
		return JustifyEnd
	default:
		return JustifyStart
	}
}

// Offset returns the position of a single item of the given extent.
func (a Align) Offset(space, extent float64) float64 {
	return Distribute(space, []float64{extent}, a.justify())[0]
}

// Distribute returns the offset of each extent within space under policy j.
// The result has the same length as extents.
func Distribute(space float64, extents []float64, j Justify) []float64 {
	offsets := make([]float64, len(extents))
	if len(extents) == 0 {
		return offsets
	}

	free := space
	for _, e := range extents {
		free -= e
	}

	var start, gap float64
	switch j {
	case JustifyEnd:
		start = free
	case JustifyCenter:
		start = free / 2
	case JustifySpaceAround:
		gap = free / float64(len(extents)+1)
		start = gap
	case JustifySpaceBetween:
		if len(extents) == 1 {
			start = free / 2
		} else {
			gap = free / float64(len(extents)-1)
		}
	}

	pos := start
	for i, e := range extents {
		offsets[i] = pos
		pos += e + gap
	}
	return offsets
}
