package orion

import (
	"fmt"
	"strings"
)

// SurfaceStatus classifies why a surface could not provide an image.
type SurfaceStatus uint8

const (
	StatusUnknown SurfaceStatus = iota
	StatusTimeout
	StatusOutdated
	StatusLost
	StatusOutOfMemory
	StatusDeviceLost
)

var surfaceStatusNames = [...]string{
	StatusUnknown:     "Unknown",
	StatusTimeout:     "Timeout",
	StatusOutdated:    "Outdated",
	StatusLost:        "Lost",
	StatusOutOfMemory: "OutOfMemory",
	StatusDeviceLost:  "DeviceLost",
}

func (s SurfaceStatus) String() string {
	if int(s) < len(surfaceStatusNames) {
		return surfaceStatusNames[s]
	}

	return fmt.Sprintf("SurfaceStatus(%d)", uint8(s))
}

// Fatal returns true if the surface can not recover by reconfiguration.
func (s SurfaceStatus) Fatal() bool {
	return s == StatusOutOfMemory || s == StatusDeviceLost
}

// SurfaceStatusOf maps a WGPUSurfaceGetCurrentTextureStatus code to a
// SurfaceStatus. failed is false for a successful acquisition.
func SurfaceStatusOf(code uint32) (status SurfaceStatus, failed bool) {
	switch code {
	case 0:
		return StatusUnknown, false
	case 1:
		return StatusTimeout, true
	case 2:
		return StatusOutdated, true
	case 3:
		return StatusLost, true
	case 4:
		return StatusOutOfMemory, true
	case 5:
		return StatusDeviceLost, true
	}

	return StatusUnknown, true
}

// ParseSurfaceStatus extracts the status from a backend status text
// like "SurfaceGetCurrentTextureStatus_Outdated" or "device lost".
func ParseSurfaceStatus(text string) SurfaceStatus {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}

		return r
	}, strings.ToLower(text))

	switch {
	// must be checked before "lost"
	case strings.Contains(normalized, "devicelost"):
		return StatusDeviceLost

	case strings.Contains(normalized, "outofmemory"):
		return StatusOutOfMemory

	case strings.Contains(normalized, "outdated"):
		return StatusOutdated

	case strings.Contains(normalized, "timeout"):
		return StatusTimeout

	case strings.Contains(normalized, "lost"):
		return StatusLost
	}

	return StatusUnknown
}

// AcquireError is returned by Surface.Acquire if no image could be acquired.
type AcquireError struct {
	Status SurfaceStatus
	Err    error
}

func (e *AcquireError) Error() string {
	if e.Err == nil {
		return "surface status " + e.Status.String()
	}

	return "surface status " + e.Status.String() + ": " + e.Err.Error()
}

func (e *AcquireError) Unwrap() error {
	return e.Err
}
