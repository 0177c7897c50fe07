// Application configuration: optional ./config/config.yaml, COLORPAGES_* environment overrides, defaults.
package config

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
	"github.com/youruser/colorpages/internal/util"

	imagepkg "github.com/youruser/colorpages/internal/image"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type PipelineConfig struct {
	Threshold       int     `mapstructure:"threshold"`
	AuditThreshold  int     `mapstructure:"audit_threshold"`
	AcceptOccupancy float64 `mapstructure:"accept_occupancy"`
	AuditCanvas     int     `mapstructure:"audit_canvas"`
	CanvasWidth     int     `mapstructure:"canvas_width"`
	CanvasHeight    int     `mapstructure:"canvas_height"`
	Margin          int     `mapstructure:"margin"`
	Background      string  `mapstructure:"background"`
	PanelWidth      int     `mapstructure:"panel_width"`
	PanelHeight     int     `mapstructure:"panel_height"`
	AssetsRoot      string  `mapstructure:"assets_root"`
	TemplatePath    string  `mapstructure:"template_path"`
	DebugStroke     int     `mapstructure:"debug_stroke"`
	DebugColor      string  `mapstructure:"debug_color"`
}

type FetchConfig struct {
	Retries int           `mapstructure:"retries"`
	Delay   time.Duration `mapstructure:"delay"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CatalogConfig struct {
	ContentDir  string   `mapstructure:"content_dir"`
	BaseURL     string   `mapstructure:"base_url"`
	StaticPages []string `mapstructure:"static_pages"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
	GroupID string   `mapstructure:"group_id"`
}

// LoadConfig reads ./config/config.yaml when present. A missing file is not
// an error; defaults and environment variables still apply.
func LoadConfig() (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath("./config")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("COLORPAGES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("pipeline.threshold", imagepkg.DefaultThreshold)
	v.SetDefault("pipeline.audit_threshold", imagepkg.DefaultAuditThreshold)
	v.SetDefault("pipeline.accept_occupancy", imagepkg.DefaultAcceptOccupancy)
	v.SetDefault("pipeline.audit_canvas", imagepkg.DefaultAuditCanvas)
	v.SetDefault("pipeline.canvas_width", 1024)
	v.SetDefault("pipeline.canvas_height", 1024)
	v.SetDefault("pipeline.margin", 25)
	v.SetDefault("pipeline.background", "#ffffff")
	v.SetDefault("pipeline.panel_width", imagepkg.DefaultPanelSize.X)
	v.SetDefault("pipeline.panel_height", imagepkg.DefaultPanelSize.Y)
	v.SetDefault("pipeline.assets_root", "public/assets")
	v.SetDefault("pipeline.template_path", "scripts/header_template_alpha.png")
	v.SetDefault("pipeline.debug_stroke", 5)
	v.SetDefault("pipeline.debug_color", "#0000ff")

	v.SetDefault("fetch.retries", 3)
	v.SetDefault("fetch.delay", 5*time.Second)
	v.SetDefault("fetch.timeout", 30*time.Second)

	v.SetDefault("catalog.content_dir", "src/content/kolorowanki")
	v.SetDefault("catalog.base_url", "http://localhost:4321")
	v.SetDefault("catalog.static_pages", []string{"/o-mnie/", "/kontakt/", "/polityka-prywatnosci/"})

	v.SetDefault("kafka.brokers", []string{"localhost:9094"})
	v.SetDefault("kafka.topic", "header-jobs")
	v.SetDefault("kafka.group_id", "header-worker")
}

// CanvasSpec builds the normalizer geometry.
func (p PipelineConfig) CanvasSpec() (imagepkg.CanvasSpec, error) {
	bg, err := colorful.Hex(p.Background)
	if err != nil {
		return imagepkg.CanvasSpec{}, fmt.Errorf("pipeline.background: %w", err)
	}
	return imagepkg.CanvasSpec{
		Width:      p.CanvasWidth,
		Height:     p.CanvasHeight,
		Margin:     p.Margin,
		Background: bg,
		Threshold:  p.Threshold,
	}, nil
}

// DebugStyle builds the visualizer outline style.
func (p PipelineConfig) DebugStyle() (imagepkg.DebugStyle, error) {
	c, err := colorful.Hex(p.DebugColor)
	if err != nil {
		return imagepkg.DebugStyle{}, fmt.Errorf("pipeline.debug_color: %w", err)
	}
	return imagepkg.DebugStyle{Stroke: p.DebugStroke, Color: c}, nil
}

func (p PipelineConfig) PanelSize() image.Point {
	return image.Pt(p.PanelWidth, p.PanelHeight)
}

func (f FetchConfig) RetryOptions() util.RetryOptions {
	return util.RetryOptions{Attempts: f.Retries, Delay: f.Delay, Timeout: f.Timeout}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
