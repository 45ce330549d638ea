package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
		{50 * time.Hour, "2d"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	if got := FormatBytes(1200); got != "1.2 kB" {
		t.Errorf("FormatBytes(1200) = %q, want 1.2 kB", got)
	}
	if got := FormatBytes(-1); got != "0 B" {
		t.Errorf("FormatBytes(-1) = %q, want 0 B", got)
	}
}

func TestRunWithWatch_Once(t *testing.T) {
	calls := 0
	err := RunWithWatch(func() error { calls++; return nil }, false)
	if err != nil || calls != 1 {
		t.Errorf("calls=%d err=%v, want one call and no error", calls, err)
	}
}

func TestWatchLoop_RefreshesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls, clears := 0, 0

	fn := func() error {
		calls++
		if calls == 2 {
			return errors.New("transient")
		}
		if calls == 3 {
			cancel()
		}
		return nil
	}

	if err := watchLoop(ctx, fn, 5*time.Millisecond, func() { clears++ }); err != nil {
		t.Fatalf("watchLoop returned %v", err)
	}
	if calls < 3 {
		t.Errorf("calls = %d, want at least 3 (errors after the first refresh are tolerated)", calls)
	}
	if clears != calls {
		t.Errorf("clears = %d, want one per refresh (%d)", clears, calls)
	}
}

func TestWatchLoop_FirstErrorReturned(t *testing.T) {
	want := errors.New("boom")
	err := watchLoop(context.Background(), func() error { return want }, time.Hour, func() {})
	if !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}
