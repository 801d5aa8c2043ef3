package hero

import "log"

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controller)

// WithConfig sets the controller configuration. Defaults to DefaultConfig.
//
// Parameters:
//   - cfg: the configuration
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithConfig(cfg Config) ControllerBuilderOption {
	return func(c *controller) {
		c.cfg = cfg
	}
}

// WithZoomEnabled sets the initial zoom flag. Defaults to true.
//
// Parameters:
//   - enabled: whether wheel zoom is offered
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithZoomEnabled(enabled bool) ControllerBuilderOption {
	return func(c *controller) {
		c.zoomEnabled = enabled
	}
}

// WithLogger enables lifecycle and state transition logging.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithLogger(logger *log.Logger) ControllerBuilderOption {
	return func(c *controller) {
		c.logger = logger
	}
}

// WithStateObserver calls observer on every idle-return state transition.
//
// Parameters:
//   - observer: the callback
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithStateObserver(observer StateObserver) ControllerBuilderOption {
	return func(c *controller) {
		c.observer = observer
	}
}
