package config

import (
	"strings"

	"github.com/IlikeChooros/go-uttt/pkg/learning"
	"github.com/IlikeChooros/go-uttt/pkg/policy"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Prefix of the environment overrides, UTTT_GAMES=200 sets 'games'
const EnvPrefix = "UTTT"

// Config holds the training, evaluation and play settings
type Config struct {
	// Training schedule
	Sets               int     `mapstructure:"sets"`
	Games              int     `mapstructure:"games"`
	Epsilon            float64 `mapstructure:"epsilon"`
	DecayStep          float64 `mapstructure:"decay_step"`
	CheckpointInterval int     `mapstructure:"checkpoint_interval"`

	Model ModelConfig `mapstructure:"model"`

	// Parquet file with per-set results, empty to skip
	ResultsPath string `mapstructure:"results_path"`

	// 0 picks a time based seed
	Seed int64 `mapstructure:"seed"`

	LogLevel string `mapstructure:"log_level"`
}

type ModelConfig struct {
	Kind         string  `mapstructure:"kind"`
	Path         string  `mapstructure:"path"`
	Alpha        float64 `mapstructure:"alpha"`
	Hidden       []int   `mapstructure:"hidden"`
	LearningRate float64 `mapstructure:"learning_rate"`
	Momentum     float64 `mapstructure:"momentum"`
	Epochs       int     `mapstructure:"epochs"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	opts := learning.DefaultOptions()
	return &Config{
		Sets:               50,
		Games:              100,
		Epsilon:            0,
		DecayStep:          policy.DefaultDecayStep,
		CheckpointInterval: policy.DefaultCheckpointInterval,
		Model: ModelConfig{
			Kind:         string(opts.Kind),
			Path:         "uttt-model.json",
			Alpha:        opts.Alpha,
			Hidden:       opts.Hidden,
			LearningRate: opts.LearningRate,
			Momentum:     opts.Momentum,
			Epochs:       opts.Epochs,
		},
		ResultsPath: "",
		Seed:        0,
		LogLevel:    "info",
	}
}

// Options of the value model
func (c *Config) ModelOptions() learning.Options {
	return learning.Options{
		Kind:         learning.Kind(c.Model.Kind),
		Alpha:        c.Model.Alpha,
		Hidden:       c.Model.Hidden,
		LearningRate: c.Model.LearningRate,
		Momentum:     c.Model.Momentum,
		Epochs:       c.Model.Epochs,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Sets <= 0 {
		return errors.New("sets must be positive")
	}
	if c.Games <= 0 {
		return errors.New("games must be positive")
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return errors.Errorf("epsilon must be within [0, 1], got %v", c.Epsilon)
	}
	if c.DecayStep < 0 {
		return errors.New("decay_step can't be negative")
	}
	if c.CheckpointInterval <= 0 {
		return errors.New("checkpoint_interval must be positive")
	}

	switch learning.Kind(c.Model.Kind) {
	case learning.KindTable:
		if c.Model.Alpha <= 0 || c.Model.Alpha > 1 {
			return errors.Errorf("model.alpha must be within (0, 1], got %v", c.Model.Alpha)
		}
	case learning.KindNetwork:
		if len(c.Model.Hidden) == 0 {
			return errors.New("model.hidden needs at least one layer")
		}
		for _, n := range c.Model.Hidden {
			if n <= 0 {
				return errors.Errorf("model.hidden layer sizes must be positive, got %v", c.Model.Hidden)
			}
		}
		if c.Model.LearningRate <= 0 {
			return errors.New("model.learning_rate must be positive")
		}
		if c.Model.Epochs <= 0 {
			return errors.New("model.epochs must be positive")
		}
	default:
		return errors.Errorf("unknown model.kind %q, expected table or network", c.Model.Kind)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// NewViper returns a viper instance knowing every key, with the defaults set
// and the environment overrides enabled. Flags may be bound to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	def := Default()

	v.SetDefault("sets", def.Sets)
	v.SetDefault("games", def.Games)
	v.SetDefault("epsilon", def.Epsilon)
	v.SetDefault("decay_step", def.DecayStep)
	v.SetDefault("checkpoint_interval", def.CheckpointInterval)
	v.SetDefault("model.kind", def.Model.Kind)
	v.SetDefault("model.path", def.Model.Path)
	v.SetDefault("model.alpha", def.Model.Alpha)
	v.SetDefault("model.hidden", def.Model.Hidden)
	v.SetDefault("model.learning_rate", def.Model.LearningRate)
	v.SetDefault("model.momentum", def.Model.Momentum)
	v.SetDefault("model.epochs", def.Model.Epochs)
	v.SetDefault("results_path", def.ResultsPath)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file (yaml, toml or json) into v and
// decodes the result. Precedence: bound flags, environment, file, defaults.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
