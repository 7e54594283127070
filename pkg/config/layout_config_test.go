package config

import "testing"

func TestLayoutFitsScreen(t *testing.T) {
	if got := ContentWidth(); got != 94 {
		t.Errorf("ContentWidth() = %d, want 94", got)
	}
	if DescriptionY+StopLayerY >= ScreenHeight {
		t.Errorf("stop line starts below the screen (%d)", DescriptionY+StopLayerY)
	}
	if OverheadWireX >= RightBarWidth {
		t.Errorf("overhead wire x %d outside the %dpx bar", OverheadWireX, RightBarWidth)
	}
}
