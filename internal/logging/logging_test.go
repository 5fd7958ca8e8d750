package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: " warn ", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "off", want: LevelOff},
		{in: "silent", want: LevelOff},
		{in: "", want: LevelInfo},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var out, errw bytes.Buffer
	l := New(Options{Level: LevelWarn, Out: &out, Err: &errw})

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	if s := out.String(); !strings.Contains(s, "[WARN] shown 3") || strings.Contains(s, "hidden") {
		t.Fatalf("out = %q", s)
	}
	if s := errw.String(); !strings.Contains(s, "[ERROR] shown 4") {
		t.Fatalf("err = %q", s)
	}

	l.SetLevel(LevelOff)
	l.Error("muted")
	if strings.Contains(errw.String(), "muted") {
		t.Fatal("LevelOff still logs")
	}
}
