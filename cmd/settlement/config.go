package main

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// ConfigError is the class of configuration errors.
var ConfigError = errs.Class("config")

// Config is the command line configuration. Every key may also be set in a
// config file (--config) or through SETTLEMENT_ prefixed environment
// variables (e.g. SETTLEMENT_LOG_LEVEL).
type Config struct {
	Details     string `mapstructure:"details"`
	Interaction string `mapstructure:"interaction"`
	Resolver    string `mapstructure:"resolver"`
	Now         uint64 `mapstructure:"now"`
	Decimals    int32  `mapstructure:"decimals"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

func loadConfig(v *viper.Viper) (cfg *Config, err error) {
	v.SetEnvPrefix("SETTLEMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)

		err = v.ReadInConfig()
		if err != nil {
			return nil, ConfigError.Wrap(err)
		}
	}

	cfg = &Config{}

	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, ConfigError.Wrap(err)
	}

	return cfg, nil
}

// DetailsBytes decodes the hex encoded details.
func (c *Config) DetailsBytes() ([]byte, error) {
	if c.Details == "" {
		return nil, ConfigError.New("details are required")
	}

	data, err := hexutil.Decode(c.Details)
	if err != nil {
		return nil, ConfigError.New("details: %v", err)
	}

	return data, nil
}

// InteractionBytes decodes the hex encoded interaction. An empty interaction
// is allowed; it only matters when the details list resolvers.
func (c *Config) InteractionBytes() ([]byte, error) {
	if c.Interaction == "" {
		return nil, nil
	}

	data, err := hexutil.Decode(c.Interaction)
	if err != nil {
		return nil, ConfigError.New("interaction: %v", err)
	}

	return data, nil
}

// ResolverAddress parses the resolver address.
func (c *Config) ResolverAddress() (addr common.Address, err error) {
	if !common.IsHexAddress(c.Resolver) {
		return addr, ConfigError.New("invalid resolver address: %q", c.Resolver)
	}

	return common.HexToAddress(c.Resolver), nil
}

// Time returns the configured current time, falling back to the system
// clock.
func (c *Config) Time() uint64 {
	if c.Now != 0 {
		return c.Now
	}

	return uint64(time.Now().Unix())
}

func newLogger(c LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, ConfigError.Wrap(err)
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
