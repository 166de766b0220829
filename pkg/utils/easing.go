package utils

import "math"

// 缓动函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出（比 Cubic 更柔和）
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值：t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PulseScale 点击脉冲的缩放曲线
// progress 为 0 时返回 minScale，为 1 时回到 1.0，中间按 EaseOutCubic 过渡
func PulseScale(progress, minScale float64) float64 {
	return Lerp(minScale, 1, EaseOutCubic(Clamp01(progress)))
}
