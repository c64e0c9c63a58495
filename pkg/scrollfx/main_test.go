package scrollfx

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 确保加载器和动画器释放后没有遗留协程
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
