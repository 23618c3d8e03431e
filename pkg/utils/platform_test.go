//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() = true on desktop")
	}
	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Errorf("IsMobile() = false with %s=1", MobileEmulateEnv)
	}
}
