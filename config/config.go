package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Service struct {
	URL string `mapstructure:"url"`
}
type Services struct {
	Transcription Service       `mapstructure:"transcription"`
	Extraction    Service       `mapstructure:"extraction"`
	Render        Service       `mapstructure:"render"`
	Timeout       time.Duration `mapstructure:"timeout"`
}
type Extraction struct {
	ChunkChars  int  `mapstructure:"chunk_chars"` // 0 sends the whole transcript at once
	Concurrency int  `mapstructure:"concurrency"`
	VerifyText  bool `mapstructure:"verify_text"`
}
type Aggregation struct {
	Strict bool `mapstructure:"strict"`
}
type Chunking struct {
	ChunkSeconds                 int `mapstructure:"chunk_seconds"`
	OverlapSeconds               int `mapstructure:"overlap_seconds"`
	MergeToleranceSeconds        int `mapstructure:"merge_tolerance_seconds"`
	CompletenessToleranceSeconds int `mapstructure:"completeness_tolerance_seconds"`
}
type Tracing struct {
	Enabled     bool    `mapstructure:"enabled"`
	Exporter    string  `mapstructure:"exporter"` // stdout|otlp
	Endpoint    string  `mapstructure:"endpoint"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}
type Root struct {
	Pipeline struct {
		Name      string `mapstructure:"name"`
		Version   string `mapstructure:"version"`
		LogLvl    string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"` // text|json
	} `mapstructure:"pipeline"`
	Services    Services    `mapstructure:"services"`
	Extraction  Extraction  `mapstructure:"extraction"`
	Aggregation Aggregation `mapstructure:"aggregation"`
	Chunking    Chunking    `mapstructure:"chunking"`
	Paths       struct {
		Outputs string `mapstructure:"outputs"`
	} `mapstructure:"paths"`
	Tracing Tracing `mapstructure:"tracing"`
}

// EnvPrefix prefixes environment overrides, e.g. WFP_SERVICES_EXTRACTION_URL.
const EnvPrefix = "WFP"

func setDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.name", "workflow-pipeline")
	v.SetDefault("pipeline.version", "dev")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("pipeline.log_format", "text")
	v.SetDefault("services.transcription.url", "")
	v.SetDefault("services.extraction.url", "")
	v.SetDefault("services.render.url", "")
	v.SetDefault("services.timeout", 60*time.Second)
	v.SetDefault("extraction.chunk_chars", 20000)
	v.SetDefault("extraction.concurrency", 3)
	v.SetDefault("extraction.verify_text", false)
	v.SetDefault("aggregation.strict", false)
	v.SetDefault("chunking.chunk_seconds", 480)
	v.SetDefault("chunking.overlap_seconds", 30)
	v.SetDefault("chunking.merge_tolerance_seconds", 2)
	v.SetDefault("chunking.completeness_tolerance_seconds", 30)
	v.SetDefault("paths.outputs", "outputs")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.exporter", "stdout")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

// Load reads path, or the first config found in the usual places when path
// is empty, and applies WFP_* environment overrides. Without any config
// file the defaults are used.
func Load(path string) (*Root, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = guess()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func guess() string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	for _, p := range []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	} {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}
