package configs

import (
	"fmt"
	"strings"

	"log-reader/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LOGREADER_WORKER_COUNT.
const EnvPrefix = "LOGREADER"

// Overrides maps dotted config keys ("worker.count") to values taken from the command line.
// They win over the config file and the environment.
type Overrides map[string]any

func setDefaults(v *viper.Viper) {
	v.SetDefault("scan.directory", "")
	v.SetDefault("scan.read_chunk", 128)
	v.SetDefault("output.path", "output.txt")
	v.SetDefault("output.overwrite", true)
	v.SetDefault("worker.count", 8)
	v.SetDefault("worker.timeout", 300)
	v.SetDefault("worker.collect_grace", 5)
	v.SetDefault("worker.failure_policy", FailurePolicySkip)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("metrics.listen_addr", "")
	v.SetDefault("metrics.textfile_path", "")
}

// LoadConfig layers defaults, the optional YAML file at configPath, LOGREADER_* environment
// variables and overrides, then validates the result.
var LoadConfig = func(configPath string, overrides Overrides) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errConfigUnreadable(configPath, err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errConfigInvalid("failed to unmarshal config", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, errConfigInvalid(fmt.Sprintf("config validation failed: %s", strings.Join(validationErrors, ", ")), err)
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.worker.count" -> "worker.count"
	if parts := strings.Split(e.Namespace(), "."); len(parts) >= 2 {
		field = strings.Join(parts[1:], ".")
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case "dir":
		msg = fmt.Sprintf("%s (not a directory: %v)", field, e.Value())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
