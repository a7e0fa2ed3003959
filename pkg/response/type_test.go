package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"goal-planner/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "utc", in: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), want: `"2024-05-01"`},
		{name: "keeps own zone at midnight", in: time.Date(2025, 8, 27, 0, 0, 0, 0, jakarta), want: `"2025-08-27"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Date: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	b, err := json.Marshal(response.DateTime(time.Date(2025, 8, 27, 19, 0, 0, 0, jakarta)))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if want := `"2025-08-27T19:00:00+07:00"`; string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

func TestNewDate(t *testing.T) {
	if response.NewDate(nil) != nil {
		t.Errorf("nil time should give nil Date")
	}
	var zero time.Time
	if response.NewDate(&zero) != nil {
		t.Errorf("zero time should give nil Date")
	}

	type body struct {
		Start *response.Date `json:"start,omitempty"`
	}
	b, _ := json.Marshal(body{})
	if string(b) != `{}` {
		t.Errorf("nil Date should be omitted, got %s", b)
	}

	tm := time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC)
	b, _ = json.Marshal(body{Start: response.NewDate(&tm)})
	if string(b) != `{"start":"2025-08-27"}` {
		t.Errorf("unexpected body %s", b)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d response.Date
	if err := json.Unmarshal([]byte(`"2025-10-27"`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2025-10-27" {
		t.Errorf("got %s", d)
	}
	if err := json.Unmarshal([]byte(`"27/10/2025"`), &d); err == nil {
		t.Errorf("expected error for a non ISO date")
	}

	var dt response.DateTime
	if err := json.Unmarshal([]byte(`"2025-08-27T19:00:00+07:00"`), &dt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dt.String() != "2025-08-27T19:00:00+07:00" {
		t.Errorf("got %s", dt)
	}
}
