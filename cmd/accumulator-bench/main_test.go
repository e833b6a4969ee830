package main

import "testing"

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"1000", 1000, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"not-a-number", 0, true},
	}
	for _, tc := range tests {
		got, err := parsePositiveInt(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parsePositiveInt(%q) = (%d, nil), want an error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePositiveInt(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parsePositiveInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRunRejectsUnknownFamily(t *testing.T) {
	if code := run([]string{"quantum", "10"}); code != exitInvalidArguments {
		t.Errorf("run with unknown family = %d, want %d", code, exitInvalidArguments)
	}
}

func TestRunRejectsWrongArgCount(t *testing.T) {
	if code := run([]string{"rsa"}); code != exitInvalidArguments {
		t.Errorf("run with missing set_size = %d, want %d", code, exitInvalidArguments)
	}
}
