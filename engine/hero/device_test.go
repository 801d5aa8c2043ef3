package hero

import "testing"

func TestClassifyViewport(t *testing.T) {
	cfg := DefaultConfig().Device
	tests := []struct {
		width int
		want  DeviceClass
		zoom  bool
		scale float32
	}{
		{375, DeviceMobile, true, 0.7},
		{768, DeviceMobile, true, 0.7},
		{769, DeviceTablet, false, 1},
		{1024, DeviceTablet, false, 1},
		{1025, DeviceDesktop, true, 1},
		{1920, DeviceDesktop, true, 1},
	}
	for _, tt := range tests {
		got := ClassifyViewport(tt.width, cfg)
		if got != tt.want {
			t.Errorf("ClassifyViewport(%d) = %s, want %s", tt.width, got, tt.want)
			continue
		}
		if got.ZoomEnabled() != tt.zoom {
			t.Errorf("%s: ZoomEnabled = %v, want %v", got, got.ZoomEnabled(), tt.zoom)
		}
		if s := got.FocalScale(cfg); s != tt.scale {
			t.Errorf("%s: FocalScale = %v, want %v", got, s, tt.scale)
		}
	}
}
