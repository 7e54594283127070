package message

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/decker502/transitface/pkg/transit"
)

func sampleRecords(n int) []transit.RouteRecord {
	records := make([]transit.RouteRecord, n)
	for i := range records {
		records[i] = transit.RouteRecord{
			Time:        int16(i + 1),
			Unit:        "min",
			StopName:    "Union Station",
			DestName:    "Kipling",
			RouteNumber: "2",
			RouteName:   "Bloor-Danforth",
			Vehicle:     transit.VehicleSubway,
			Color:       transit.ColorLimerick,
			Shape:       transit.ShapeCircle,
		}
	}
	return records
}

func TestEncodeDecodeRecords(t *testing.T) {
	records := sampleRecords(3)
	update, err := Decode(Encode(records))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if update.Status != transit.StatusOK {
		t.Errorf("status = %v, want OK", update.Status)
	}
	if len(update.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(update.Records))
	}
	for i := range records {
		if update.Records[i] != records[i] {
			t.Errorf("record %d = %+v, want %+v", i, update.Records[i], records[i])
		}
	}
}

func TestDecode(t *testing.T) {
	full := Encode(sampleRecords(2))

	withValue := func(k Key, v Value) Dict {
		d := full.Clone()
		d[k] = v
		return d
	}
	without := func(k Key) Dict {
		d := full.Clone()
		delete(d, k)
		return d
	}

	tests := []struct {
		name       string
		dict       Dict
		wantStatus transit.Status
		wantCount  int
		wantErr    error
	}{
		{"missing count", Dict{}, 0, 0, ErrNoCount},
		{"count is a string", Dict{KeyNumRoutes: String("2")}, transit.StatusMessageDecodeFailure, 0, ErrWrongKind},
		{"no connection", Dict{KeyNumRoutes: Int(-2)}, transit.StatusNoConnection, 0, nil},
		{"zero routes", Dict{KeyNumRoutes: Int(0)}, transit.StatusNoResults, 0, nil},
		{"unknown negative", Dict{KeyNumRoutes: Int(-42)}, transit.StatusUnknownAPIError, 0, nil},
		{"missing dest", without(KeyDestName.Field(1)), transit.StatusMessageDecodeFailure, 0, ErrMissingField},
		{"time as string", withValue(KeyTime.Field(0), String("5")), transit.StatusMessageDecodeFailure, 0, ErrWrongKind},
		{"unit as int", withValue(KeyUnit.Field(0), Int(5)), transit.StatusMessageDecodeFailure, 0, ErrWrongKind},
		{"vehicle out of range", withValue(KeyVehicle.Field(0), Int(9)), transit.StatusMessageDecodeFailure, 0, ErrOutOfRange},
		{"color out of range", withValue(KeyColor.Field(1), Int(300)), transit.StatusMessageDecodeFailure, 0, ErrOutOfRange},
		{"count larger than fields", withValue(KeyNumRoutes, Int(3)), transit.StatusMessageDecodeFailure, 0, ErrMissingField},
		{"ok", full, transit.StatusOK, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update, err := Decode(tt.dict)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if update.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", update.Status, tt.wantStatus)
			}
			if len(update.Records) != tt.wantCount {
				t.Errorf("records = %d, want %d", len(update.Records), tt.wantCount)
			}
		})
	}
}

func TestDecodeTruncatesToCapacity(t *testing.T) {
	d := Encode(sampleRecords(transit.MaxRoutes))
	d[KeyNumRoutes] = Int(transit.MaxRoutes + 5)

	update, err := Decode(d)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(update.Records) != transit.MaxRoutes {
		t.Errorf("got %d records, want %d", len(update.Records), transit.MaxRoutes)
	}
}

func TestEncodeLimits(t *testing.T) {
	if got, _ := Encode(nil)[KeyNumRoutes].AsInt(); got != int(transit.StatusNoResults) {
		t.Errorf("empty encode count = %d, want NoResults", got)
	}
	if got, _ := Encode(sampleRecords(20))[KeyNumRoutes].AsInt(); got != transit.MaxRoutes {
		t.Errorf("encode count = %d, want %d", got, transit.MaxRoutes)
	}
	if got, _ := EncodeStatus(transit.StatusLocationDenied)[KeyNumRoutes].AsInt(); got != -6 {
		t.Errorf("status code = %d, want -6", got)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNumRoutes, "num_routes"},
		{KeyDestName.Field(3), "dest_name[3]"},
		{KeyShape, "shape[0]"},
		{Key(1234), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", uint32(tt.key), got, tt.want)
		}
	}
}

func TestDictMarshalYAML(t *testing.T) {
	d := Dict{
		KeyDestName:  String("Kipling"),
		KeyTime:      Int(3),
		KeyNumRoutes: Int(1),
	}
	out, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back map[string]interface{}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, out)
	}
	if back["num_routes"] != 1 || back["time[0]"] != 3 || back["dest_name[0]"] != "Kipling" {
		t.Errorf("round trip = %v", back)
	}

	text := string(out)
	if !(strings.Index(text, "num_routes") < strings.Index(text, "time[0]") &&
		strings.Index(text, "time[0]") < strings.Index(text, "dest_name[0]")) {
		t.Errorf("keys not in numeric order:\n%s", text)
	}
}
