package orion

import (
	"errors"
	"testing"
)

func TestParseSurfaceStatus(t *testing.T) {
	tests := []struct {
		text string
		want SurfaceStatus
	}{
		{"SurfaceGetCurrentTextureStatus_Outdated", StatusOutdated},
		{"surface texture outdated", StatusOutdated},
		{"SurfaceGetCurrentTextureStatus_Lost", StatusLost},
		{"SurfaceGetCurrentTextureStatus_Timeout", StatusTimeout},
		{"SurfaceGetCurrentTextureStatus_OutOfMemory", StatusOutOfMemory},
		{"out of memory", StatusOutOfMemory},
		{"SurfaceGetCurrentTextureStatus_DeviceLost", StatusDeviceLost},
		{"device-lost", StatusDeviceLost},
		{"something else", StatusUnknown},
		{"", StatusUnknown},
	}

	for _, test := range tests {
		if got := ParseSurfaceStatus(test.text); got != test.want {
			t.Errorf("ParseSurfaceStatus(%q) = %s, want %s", test.text, got, test.want)
		}
	}
}

func TestSurfaceStatusFatal(t *testing.T) {
	fatal := map[SurfaceStatus]bool{
		StatusUnknown:     false,
		StatusTimeout:     false,
		StatusOutdated:    false,
		StatusLost:        false,
		StatusOutOfMemory: true,
		StatusDeviceLost:  true,
	}

	for status, want := range fatal {
		if status.Fatal() != want {
			t.Errorf("%s.Fatal() = %v, want %v", status, !want, want)
		}
	}
}

func TestAcquireErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &AcquireError{Status: StatusLost, Err: inner}

	if !errors.Is(err, inner) {
		t.Fatal("AcquireError does not unwrap")
	}

	if err.Error() != "surface status Lost: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSurfaceStatusOf(t *testing.T) {
	tests := []struct {
		code   uint32
		want   SurfaceStatus
		failed bool
	}{
		{0, StatusUnknown, false},
		{1, StatusTimeout, true},
		{2, StatusOutdated, true},
		{3, StatusLost, true},
		{4, StatusOutOfMemory, true},
		{5, StatusDeviceLost, true},
		{0x7FFFFFFF, StatusUnknown, true},
	}

	for _, test := range tests {
		got, failed := SurfaceStatusOf(test.code)
		if got != test.want || failed != test.failed {
			t.Errorf("SurfaceStatusOf(%d) = %s, %v, want %s, %v",
				test.code, got, failed, test.want, test.failed)
		}
	}
}

func TestSurfaceStatusOfRetryable(t *testing.T) {
	for _, code := range []uint32{1, 2, 3} {
		status, _ := SurfaceStatusOf(code)
		if status.Fatal() {
			t.Errorf("status code %d (%s) must be retryable", code, status)
		}
	}

	for _, code := range []uint32{4, 5} {
		status, _ := SurfaceStatusOf(code)
		if !status.Fatal() {
			t.Errorf("status code %d (%s) must be fatal", code, status)
		}
	}
}
