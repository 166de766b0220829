// Package sound 生成点击音效
//
// 音效在启动时用 beep 合成为 PCM，桌面端交给 ebiten/audio 播放，
// 终端版直接交给 beep/speaker 播放。
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// 点击音效参数
const (
	SampleRate     = 44100
	ClickFrequency = 880.0
	ClickDuration  = 50 * time.Millisecond
	ClickVolume    = 0.3
)

// ClickStreamer 返回一段带淡出的正弦波
// 淡出避免音效结束时的爆音
func ClickStreamer(sampleRate beep.SampleRate, freq float64, duration time.Duration) (beep.Streamer, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("tone frequency must be positive, got %v", freq)
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create sine tone: %w", err)
	}

	total := sampleRate.N(duration)
	position := 0
	faded := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := sine.Stream(samples)
		for i := 0; i < n; i++ {
			vol := ClickVolume * (1 - float64(position)/float64(total))
			samples[i][0] *= vol
			samples[i][1] *= vol
			position++
		}
		return n, ok
	})

	return beep.Take(total, faded), nil
}

// ClickPCM 将点击音效渲染为 16 位小端立体声 PCM（ebiten/audio 的输入格式）
func ClickPCM(sampleRate int, freq float64, duration time.Duration) ([]byte, error) {
	streamer, err := ClickStreamer(beep.SampleRate(sampleRate), freq, duration)
	if err != nil {
		return nil, err
	}

	var pcm []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for _, frame := range buf[:n] {
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(frame[0])))
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	return pcm, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
