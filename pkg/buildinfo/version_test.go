package buildinfo

import (
	"strings"
	"testing"
)

func TestStrings(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	if !strings.Contains(String(), "version: v9.9.9") {
		t.Errorf("String() = %q", String())
	}
	if !strings.Contains(Template(), "{{.Name}} version v9.9.9") {
		t.Errorf("Template() = %q", Template())
	}
	if got := ServerHeader(); got != "axis2d/v9.9.9" {
		t.Errorf("ServerHeader() = %q, want axis2d/v9.9.9", got)
	}
	if got := CacheScope(); !strings.HasPrefix(got, "axis2d:v9.9.9:") || !strings.HasSuffix(got, ":") {
		t.Errorf("CacheScope() = %q", got)
	}
}
