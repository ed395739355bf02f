package shell

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string
	Logfile  string
	Verbose  bool
	Prompt   string
	Aliases  map[string]string
}

func init() {
	viper.SetDefault("LogLevel", "warn")
	viper.SetDefault("Logfile", "")
	viper.SetDefault("Verbose", false)
	viper.SetDefault("Prompt", "")
	viper.SetDefault("Aliases", map[string]string{
		"enc": CmdEncode,
		"dec": CmdDecode,
	})
}

// LoadConfig reads the settings viper currently holds.
func LoadConfig() (Config, error) {
	var config Config
	err := viper.Unmarshal(&config)
	return config, err
}

// resolve maps a command token to its canonical command name.
func (c Config) resolve(tok string) string {
	tok = strings.ToLower(tok)
	for alias, cmd := range c.Aliases {
		if strings.ToLower(alias) == tok {
			return strings.ToLower(cmd)
		}
	}
	return tok
}
