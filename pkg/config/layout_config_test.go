package config

import "testing"

// TestShopEntriesFitWindow 九个商品条目必须完整显示在窗口内
func TestShopEntriesFitWindow(t *testing.T) {
	bottom := ShopEntryY(8) + ShopEntryHeight
	if bottom > GameWindowHeight {
		t.Errorf("shop entries overflow window: bottom=%.0f, height=%d", bottom, GameWindowHeight)
	}

	if AutoClickerColumnX+ShopEntryWidth > GameWindowWidth {
		t.Errorf("auto clicker column overflows window width")
	}
	if UpgradeColumnX+ShopEntryWidth > AutoClickerColumnX {
		t.Errorf("shop columns overlap")
	}
}

func TestCommandButtonX(t *testing.T) {
	if got := CommandButtonX(0); got != HUDX {
		t.Errorf("CommandButtonX(0) = %v, want %v", got, HUDX)
	}
	if got := CommandButtonX(2); got != HUDX+2*(CommandButtonWidth+CommandButtonGap) {
		t.Errorf("CommandButtonX(2) = %v", got)
	}
	if CommandButtonX(2)+CommandButtonWidth > UpgradeColumnX {
		t.Errorf("command buttons overlap the shop column")
	}
}
