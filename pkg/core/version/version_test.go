package version

import (
	"regexp"
	"runtime"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstant(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q does not match semver format (x.y.z)", Version)
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Version != Version {
		t.Errorf("Version = %q, want %q", info.Version, Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Platform = %q", info.Platform)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc123"}
	if got := info.String(); got != "toolbox v1.2.3 (abc123)" {
		t.Errorf("String() = %q", got)
	}
}
