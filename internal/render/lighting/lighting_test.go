package lighting

import (
	"math"
	"testing"
)

func TestFogIsLinearToCap(t *testing.T) {
	m := NewManager(Config{Ambient: 0.1, FogDistance: 10})
	tests := []struct{ dist, want float64 }{
		{0, 1},
		{5, 0.5},
		{9.5, 0.1},
		{50, 0.1},
	}
	for _, tt := range tests {
		if got := m.Fog(tt.dist); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Fog(%v) expected %v, got %v", tt.dist, tt.want, got)
		}
	}
}

func TestFlickerStaysInRange(t *testing.T) {
	m := NewManager(DefaultConfig())
	lo := 1 - DefaultConfig().FlickerAmount
	for i := 0; i < 600; i++ {
		m.Update(1.0 / 60)
		if f := m.Flicker(); f < lo-1e-9 || f > 1+1e-9 {
			t.Fatalf("flicker %v outside [%v, 1]", f, lo)
		}
	}
}

func TestTorchBrightensNearby(t *testing.T) {
	m := NewManager(Config{Ambient: 0.1, FogDistance: 10, TorchRadius: 2, TorchIntensity: 0.5})
	base := m.Brightness(3.5, 3.5, 5)
	m.AddTorch(3.5, 3.5)
	if got := m.Brightness(3.5, 3.5, 5); got <= base {
		t.Errorf("torch should brighten its tile, %v <= %v", got, base)
	}
	if got := m.Brightness(8.5, 3.5, 5); got != base {
		t.Errorf("points outside the radius should be unaffected, got %v want %v", got, base)
	}
	m.ClearLights()
	if len(m.Lights()) != 0 {
		t.Error("ClearLights should drop every light")
	}
}
