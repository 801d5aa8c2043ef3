package hero

// DeviceClass is the coarse viewport classification used to tune the showcase.
type DeviceClass int

const (
	DeviceDesktop DeviceClass = iota
	DeviceTablet
	DeviceMobile
)

func (d DeviceClass) String() string {
	switch d {
	case DeviceMobile:
		return "mobile"
	case DeviceTablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// ClassifyViewport maps a viewport width to a device class.
// Widths up to MobileMaxWidth are mobile, up to TabletMaxWidth tablet, anything wider desktop.
//
// Parameters:
//   - width: viewport width in pixels
//   - cfg: the breakpoints
//
// Returns:
//   - DeviceClass: the classification
func ClassifyViewport(width int, cfg DeviceConfig) DeviceClass {
	switch {
	case width <= cfg.MobileMaxWidth:
		return DeviceMobile
	case width <= cfg.TabletMaxWidth:
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}

// ZoomEnabled reports whether wheel zoom is offered on this class. Only tablets disable it.
func (d DeviceClass) ZoomEnabled() bool {
	return d != DeviceTablet
}

// FocalScale returns the scale applied to the focal group on this class.
func (d DeviceClass) FocalScale(cfg DeviceConfig) float32 {
	if d == DeviceMobile {
		return cfg.MobileScale
	}
	return 1
}
