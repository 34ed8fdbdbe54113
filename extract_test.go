package cumreturn

import (
	"encoding/json"
	"testing"
	"time"
)

func TestExtractReturns(t *testing.T) {
	const doc = `{
		"history": [
			{"date": "2015-01-10", "r": 0.1},
			{"date": "2015-02-10", "r": "0.05"},
			{"date": "2015-04-10", "r": 0.15}
		],
		"bad": [{"date": 20150110, "r": true}],
		"single": {"date": "2015-06-10", "r": -0.12}
	}`
	var jobj any
	if err := json.Unmarshal([]byte(doc), &jobj); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		datesPath   string
		returnsPath string
		want        Returns
		wantErr     bool
	}{
		{"list", "$.history[*].date", "$.history[*].r", Returns{d(time.January, 10): 0.1, d(time.February, 10): 0.05, d(time.April, 10): 0.15}, false},
		{"single value", "$.single.date", "$.single.r", Returns{d(time.June, 10): -0.12}, false},
		{"length mismatch", "$.history[*].date", "$.single.r", nil, true},
		{"date not a string", "$.bad[*].date", "$.history[0].r", nil, true},
		{"return not a number", "$.history[0].date", "$.bad[*].r", nil, true},
		{"invalid path", "$.history[", "$.history[*].r", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractReturns(jobj, tt.datesPath, tt.returnsPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractReturns() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractReturns() = %v, want %v", got, tt.want)
			}
			for on, r := range tt.want {
				if got[on] != r {
					t.Errorf("ExtractReturns()[%v] = %v, want %v", on, got[on], r)
				}
			}
		})
	}
}
