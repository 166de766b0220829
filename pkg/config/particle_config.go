package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/cookieclicker/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// CrumbParticleConfig 饼干碎屑粒子参数
//
// 速度与尺寸单位为像素，生命周期单位为帧。
// 区间参数均为 [Min, Max) 均匀分布。
type CrumbParticleConfig struct {
	BurstCount  int      `yaml:"burstCount"`  // 每次点击生成的粒子数量
	SpeedMin    float64  `yaml:"speedMin"`    // 初始速度下限（像素/帧）
	SpeedMax    float64  `yaml:"speedMax"`    // 初始速度上限（像素/帧）
	LifespanMin float64  `yaml:"lifespanMin"` // 生命周期下限（帧）
	LifespanMax float64  `yaml:"lifespanMax"` // 生命周期上限（帧）
	SizeMin     float64  `yaml:"sizeMin"`     // 初始尺寸下限（像素）
	SizeMax     float64  `yaml:"sizeMax"`     // 初始尺寸上限（像素）
	Gravity     float64  `yaml:"gravity"`     // 每帧叠加到 VY 的重力
	SizeDecay   float64  `yaml:"sizeDecay"`   // 每帧尺寸衰减系数，必须在 (0, 1) 之间
	Palette     []string `yaml:"palette"`     // 颜色调色板（#rrggbb）

	colors []color.RGBA // 解析后的调色板
}

// ParticleConfig particles.yaml 文件结构
type ParticleConfig struct {
	Crumb CrumbParticleConfig `yaml:"crumb"`
}

// DefaultCrumbParticleConfig 返回默认碎屑参数
// 用于配置文件缺失时的降级，以及单元测试
func DefaultCrumbParticleConfig() *CrumbParticleConfig {
	cfg := &CrumbParticleConfig{
		BurstCount:  18,
		SpeedMin:    2,
		SpeedMax:    5,
		LifespanMin: 40,
		LifespanMax: 60,
		SizeMin:     3,
		SizeMax:     6,
		Gravity:     0.15,
		SizeDecay:   0.98,
		Palette:     []string{"#d2b48c", "#f3e5ab", "#a67c52", "#ffffff"},
	}
	// 默认值是合法的，这里的错误不会发生
	_ = cfg.parsePalette()
	return cfg
}

// LoadParticleConfig 从嵌入的 YAML 文件加载粒子配置
func LoadParticleConfig(filepath string) (*ParticleConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read particle config %s: %w", filepath, err)
	}

	config, err := ParseParticleConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return config, nil
}

// ParseParticleConfig 解析并校验粒子配置 YAML 数据
func ParseParticleConfig(data []byte) (*ParticleConfig, error) {
	var config ParticleConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse particle YAML: %w", err)
	}

	if err := validateParticleConfig(&config.Crumb); err != nil {
		return nil, fmt.Errorf("invalid crumb particle config: %w", err)
	}

	return &config, nil
}

// validateParticleConfig 验证碎屑参数并解析调色板
func validateParticleConfig(c *CrumbParticleConfig) error {
	if c.BurstCount <= 0 {
		return fmt.Errorf("burstCount must be positive, got %d", c.BurstCount)
	}
	if c.SpeedMin < 0 || c.SpeedMax < c.SpeedMin {
		return fmt.Errorf("invalid speed range [%v, %v)", c.SpeedMin, c.SpeedMax)
	}
	if c.LifespanMin <= 0 || c.LifespanMax < c.LifespanMin {
		return fmt.Errorf("invalid lifespan range [%v, %v)", c.LifespanMin, c.LifespanMax)
	}
	if c.SizeMin <= 0 || c.SizeMax < c.SizeMin {
		return fmt.Errorf("invalid size range [%v, %v)", c.SizeMin, c.SizeMax)
	}
	if c.SizeDecay <= 0 || c.SizeDecay >= 1 {
		return fmt.Errorf("sizeDecay must be in (0, 1), got %v", c.SizeDecay)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette must contain at least one color")
	}
	return c.parsePalette()
}

// parsePalette 将 #rrggbb 字符串解析为颜色
func (c *CrumbParticleConfig) parsePalette() error {
	colors := make([]color.RGBA, 0, len(c.Palette))
	for _, hex := range c.Palette {
		clr, err := ParseHexColor(hex)
		if err != nil {
			return err
		}
		colors = append(colors, clr)
	}
	c.colors = colors
	return nil
}

// Colors 返回解析后的调色板
func (c *CrumbParticleConfig) Colors() []color.RGBA {
	return c.colors
}

// ParseHexColor 解析 "#rrggbb" 或 "#rgb" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
