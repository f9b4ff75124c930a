package resource

import (
	"bytes"
	"io"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"todo-tracker/configs"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`^\$\{([^:}]+)(?::([^}]*))?}$`)

// init loads application properties from PROPERTIES_FILE_PATH, or from the embedded defaults
func init() {
	if configs.Env.PropertiesFilePath != "" {
		Init(configs.Env.PropertiesFilePath)
		return
	}
	if err := Load(bytes.NewReader(configs.ApplicationYAML)); err != nil {
		log.Fatalf("Fail to read embedded properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath
func Init(filepath string) {
	file, err := os.Open(filepath)
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	defer file.Close()

	if err := Load(file); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Load reads YAML properties from r and resolves ${ENV:default} placeholders
func Load(r io.Reader) error {
	loaded := viper.New()
	loaded.SetConfigType("yml")
	if err := loaded.ReadConfig(r); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", loaded.AllSettings(), resolved)
	for key, value := range resolved {
		loaded.Set(key, value)
	}

	properties = loaded
	return nil
}

// parsePropertiesMap reads recursively the YAML file, keeping only values that need resolution
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolvedValue, ok := resolveEnvVariable(v); ok {
				result[fullKey] = resolvedValue
			}
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable reports whether value is an env placeholder and returns its resolution
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return "", false
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue, true
	}
	return matches[2], true
}

// Set overrides a single property, mostly useful in tests.
func Set(key string, value any) {
	properties.Set(key, value)
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
