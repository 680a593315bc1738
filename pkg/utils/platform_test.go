//go:build !mobile

package utils

import (
	"testing"

	"github.com/decker502/pvz-setup/pkg/config"
)

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("PVZ_SETUP_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

func TestIsMobile_Emulated(t *testing.T) {
	t.Setenv("PVZ_SETUP_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when emulated")
	}
	if DragThreshold() != config.TouchDragThreshold {
		t.Errorf("Expected touch threshold when emulated, got %.1f", DragThreshold())
	}
}
