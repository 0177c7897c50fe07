package config

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	p := cfg.Pipeline
	assert.Equal(t, 200, p.Threshold)
	assert.Equal(t, 255, p.AuditThreshold)
	assert.InDelta(t, 0.85, p.AcceptOccupancy, 1e-9)
	assert.Equal(t, image.Pt(400, 400), p.PanelSize())
	assert.Equal(t, 5*time.Second, cfg.Fetch.Delay)
	assert.Equal(t, 3, cfg.Fetch.RetryOptions().Attempts)
	assert.Equal(t, []string{"localhost:9094"}, cfg.Kafka.Brokers)

	spec, err := p.CanvasSpec()
	require.NoError(t, err)
	assert.Equal(t, 1024, spec.Width)
	assert.Equal(t, 25, spec.Margin)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, color.NRGBAModel.Convert(spec.Background))

	style, err := p.DebugStyle()
	require.NoError(t, err)
	assert.Equal(t, 5, style.Stroke)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, color.NRGBAModel.Convert(style.Color))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("COLORPAGES_PIPELINE_MARGIN", "40")
	t.Setenv("COLORPAGES_PIPELINE_BACKGROUND", "#102030")

	v, err := LoadConfig()
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	spec, err := cfg.Pipeline.CanvasSpec()
	require.NoError(t, err)
	assert.Equal(t, 40, spec.Margin)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}, color.NRGBAModel.Convert(spec.Background))
}

func TestBadColor(t *testing.T) {
	p := PipelineConfig{Background: "white", DebugColor: "#zzzzzz"}
	_, err := p.CanvasSpec()
	assert.Error(t, err)
	_, err = p.DebugStyle()
	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("COLORPAGES_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("COLORPAGES_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("COLORPAGES_TEST_UNSET", "default"))
}
