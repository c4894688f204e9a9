package strview

import (
	"fmt"
	"testing"
)

func TestVersion(t *testing.T) {
	if VersionString() != Version {
		t.Errorf("VersionString() = %q, want %q", VersionString(), Version)
	}

	// The string constant must stay in step with the numeric ones
	if got := fmt.Sprintf("v%d.%d.%d", VersionMajor, VersionMinor, VersionPatch); got != Version {
		t.Errorf("Version %q does not match its parts %q", Version, got)
	}

	info := VersionInfo()
	if info["major"] != VersionMajor || info["minor"] != VersionMinor || info["patch"] != VersionPatch {
		t.Errorf("Unexpected VersionInfo: %v", info)
	}
}
