package render

// Z-index constants for layered rendering. Higher values render on top.
const (
	// ZBox is for node outlines
	ZBox = 0

	// ZLabel is for node names drawn into the outline
	ZLabel = 1

	// ZRegion is for highlighted partial reshade regions
	ZRegion = 10

	// ZFull is for nodes that are reshaded whole
	ZFull = 11

	// ZStatus is for the status line, which stays readable over any overlay
	ZStatus = 100
)
