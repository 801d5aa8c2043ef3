package input

// HoverTrackerOption is a functional option for configuring a HoverTracker.
type HoverTrackerOption func(*hoverTracker)

// WithViewport sets the initial viewport size.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - HoverTrackerOption: option function to apply
func WithViewport(width, height int) HoverTrackerOption {
	return func(h *hoverTracker) {
		h.width = width
		h.height = height
	}
}

// WithOnChange sets the enter/leave callback at construction.
//
// Parameters:
//   - callback: function receiving the new hover state
//
// Returns:
//   - HoverTrackerOption: option function to apply
func WithOnChange(callback func(hovered bool)) HoverTrackerOption {
	return func(h *hoverTracker) {
		h.onChange = callback
	}
}
