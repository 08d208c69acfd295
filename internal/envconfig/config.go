package envconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Var reads a setting from the environment.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Bool returns a getter for a boolean setting. Any value that is not a valid
// boolean enables it.
func Bool(key string) func() bool {
	return func() bool {
		if s := Var(key); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

// Int returns a getter for a non-negative integer setting.
func Int(key string, defaultValue int) func() int {
	return func() int {
		if s := Var(key); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				zap.L().Warn("invalid environment variable, using default",
					zap.String("key", key),
					zap.String("value", s),
					zap.Int("default", defaultValue),
				)
				return defaultValue
			}
			return n
		}
		return defaultValue
	}
}

// String returns a getter for a string setting.
func String(key, defaultValue string) func() string {
	return func() string {
		if s := Var(key); s != "" {
			return s
		}
		return defaultValue
	}
}

var (
	// Debug enables debug logging. Set via DLLIST_DEBUG in the environment.
	Debug = Bool("DLLIST_DEBUG")
	// Count is the number of values to append. Set via DLLIST_COUNT in the environment.
	Count = Int("DLLIST_COUNT", 5)
	// Format is the output format. Set via DLLIST_FORMAT in the environment.
	Format = String("DLLIST_FORMAT", "text")
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"DLLIST_DEBUG":  {"DLLIST_DEBUG", Debug(), "Show additional debug information (e.g. DLLIST_DEBUG=1)"},
		"DLLIST_COUNT":  {"DLLIST_COUNT", Count(), "Number of values to append (default 5)"},
		"DLLIST_FORMAT": {"DLLIST_FORMAT", Format(), "Output format, text or table (default \"text\")"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
