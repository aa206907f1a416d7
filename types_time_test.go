package tradelog

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:46:11", "09:46:11", false},
		{"15:59:16", "15:59:16", false},
		{"00:00:00", "00:00:00", false},
		{" 10:06:17 ", "10:06:17", false},
		{"9:46", "", true},
		{"25:00:00", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) = %s, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) error = %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDay_Compare(t *testing.T) {
	morning := MustParseTimeOfDay("09:46:11")
	close := MustParseTimeOfDay("15:59:16")

	if !morning.Before(close) || close.Before(morning) {
		t.Errorf("Before: %s vs %s", morning, close)
	}
	if !close.After(morning) || morning.After(close) {
		t.Errorf("After: %s vs %s", morning, close)
	}
}

func TestTimeOfDay_JSON(t *testing.T) {
	tod := MustParseTimeOfDay("10:06:17")
	data, err := tod.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"10:06:17"` {
		t.Errorf("MarshalJSON() = %s, want \"10:06:17\"", data)
	}

	var back TimeOfDay
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != tod {
		t.Errorf("round trip = %s, want %s", back, tod)
	}
}
