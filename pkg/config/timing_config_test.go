package config

import (
	"testing"
	"time"
)

func TestTimingValidate(t *testing.T) {
	tests := []struct {
		name    string
		timing  Timing
		wantErr bool
	}{
		{"default", DefaultTiming(), false},
		{"max reopen delay", Timing{DoorReopenDelay: DoorReopenDelayMax, RefreshInterval: time.Second}, false},
		{"reopen delay too short", Timing{DoorReopenDelay: 399 * time.Millisecond, RefreshInterval: time.Second}, true},
		{"reopen delay too long", Timing{DoorReopenDelay: 601 * time.Millisecond, RefreshInterval: time.Second}, true},
		{"zero refresh", Timing{DoorReopenDelay: DoorReopenDelayMin}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.timing.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestTransitionTimeline 检查过渡动画各段的时间关系
func TestTransitionTimeline(t *testing.T) {
	panelTotal := 2 * PanelScrollDuration
	vehicleOutEnd := VehicleStartDelay + VehicleSlideDuration
	vehicleInEnd := vehicleOutEnd + VehicleInterLegDelay + VehicleSlideDuration

	// 车辆滑出与描述面板提交记录同时结束
	if vehicleOutEnd != PanelScrollDuration {
		t.Errorf("vehicle leaves at %v, want it to end as the panel commits at %v", vehicleOutEnd, PanelScrollDuration)
	}
	if CountdownFadeDelay+CountdownFadeDuration > ColorFadeDuration {
		t.Errorf("countdown fade outlasts the color fade")
	}
	if vehicleInEnd != 720*time.Millisecond {
		t.Errorf("vehicle sequence ends at %v, want 720ms", vehicleInEnd)
	}
	if panelTotal != 520*time.Millisecond {
		t.Errorf("panel sequence ends at %v, want 520ms", panelTotal)
	}
}
