package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int     `envconfig:"PORT" default:"8080"`
	AllowedOrigins string  `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	CanvasWidth    float64 `envconfig:"CANVAS_WIDTH" default:"800"`
	CanvasHeight   float64 `envconfig:"CANVAS_HEIGHT" default:"600"`
	StrokeColor    string  `envconfig:"STROKE_COLOR" default:"#000000"`
	StrokeWidth    float64 `envconfig:"STROKE_WIDTH" default:"3"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Origins splits AllowedOrigins into the list the CORS middleware and
// the WebSocket accept check consume.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
