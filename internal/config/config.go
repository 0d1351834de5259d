package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/wahidmounir/bzflag/internal/flag"
	"github.com/wahidmounir/bzflag/pkg/game"
)

// CustomFlagDef is one server-defined flag as spelled in the config file.
// Enum fields use the String spellings of the flag package types.
type CustomFlagDef struct {
	Name      string `json:"name" mapstructure:"name"`
	Abbrev    string `json:"abbrev" mapstructure:"abbrev"`
	Help      string `json:"help" mapstructure:"help"`
	Endurance string `json:"endurance" mapstructure:"endurance"`
	Quality   string `json:"quality" mapstructure:"quality"`
	Shot      string `json:"shot" mapstructure:"shot"`
	Team      string `json:"team" mapstructure:"team"`
	Effect    string `json:"effect" mapstructure:"effect"`
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./flaglogs")

	viper.SetDefault("session.serverName", "localhost")
	viper.SetDefault("session.decoyFlag", "")

	viper.SetDefault("metrics.enabled", false)

	viper.SetConfigName("flagtool.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// CustomFlags returns the server-defined flag types declared in config,
// converted to flag descriptors ready for registration. A definition with
// an unrecognized enum spelling fails the whole load; a half-understood
// flag catalog is worse than none.
func CustomFlags() ([]*flag.Type, error) {
	var defs []CustomFlagDef
	if err := viper.UnmarshalKey("customFlags", &defs); err != nil {
		return nil, fmt.Errorf("error unmarshalling customFlags: %w", err)
	}

	types := make([]*flag.Type, 0, len(defs))
	for _, def := range defs {
		t, err := def.toType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func (def CustomFlagDef) toType() (*flag.Type, error) {
	if def.Abbrev == "" || len(def.Abbrev) > 2 {
		return nil, fmt.Errorf("custom flag %q: abbrev must be 1-2 characters", def.Name)
	}

	endurance, ok := flag.ParseEndurance(orDefault(def.Endurance, "Normal"))
	if !ok {
		return nil, fmt.Errorf("custom flag %q: unknown endurance %q", def.Name, def.Endurance)
	}
	quality, ok := flag.ParseQuality(orDefault(def.Quality, "Good"))
	if !ok {
		return nil, fmt.Errorf("custom flag %q: unknown quality %q", def.Name, def.Quality)
	}
	shot, ok := flag.ParseShotType(orDefault(def.Shot, "Normal"))
	if !ok {
		return nil, fmt.Errorf("custom flag %q: unknown shot type %q", def.Name, def.Shot)
	}
	effect, ok := flag.ParseEffect(orDefault(def.Effect, "Normal"))
	if !ok {
		return nil, fmt.Errorf("custom flag %q: unknown effect %q", def.Name, def.Effect)
	}
	team, err := parseTeam(orDefault(def.Team, "None"))
	if err != nil {
		return nil, fmt.Errorf("custom flag %q: %w", def.Name, err)
	}

	return &flag.Type{
		Name:      def.Name,
		Abbrev:    def.Abbrev,
		Help:      def.Help,
		Endurance: endurance,
		Shot:      shot,
		Quality:   quality,
		Team:      team,
		Effect:    effect,
		Custom:    true,
	}, nil
}

func parseTeam(s string) (game.TeamColor, error) {
	for t := game.AutomaticTeam; t <= game.HunterTeam; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return game.NoTeam, fmt.Errorf("unknown team %q", s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
