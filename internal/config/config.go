package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Errorf("unable to register notblank validation: %w", err))
	}
}

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	Players  Players `yaml:"players"`
}

type Players struct {
	SymbolA string `yaml:"symbol-a" env:"TICTACTOE_SYMBOL_A" env-default:"x" validate:"required,notblank,len=1,nefield=SymbolB"`
	SymbolB string `yaml:"symbol-b" env:"TICTACTOE_SYMBOL_B" env-default:"o" validate:"required,notblank,len=1"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load reads path when it exists, otherwise only the environment, then validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Players) Symbols() entity.Symbols {
	return entity.Symbols{
		PlayerA: that.SymbolA,
		PlayerB: that.SymbolB,
	}
}
