package data

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is looked up in the config directory. It is optional.
const ConfigFileName = "shooter.cfg.json"

// Config is the runtime configuration, read from shooter.cfg.json and SHOOTER_* variables.
type Config struct {
	LogLevel string `mapstructure:"logLevel"`
	Seed     int64  `mapstructure:"seed"`
	StageID  string `mapstructure:"stageId"`

	Screen struct {
		Width  int `mapstructure:"width"`
		Height int `mapstructure:"height"`
	} `mapstructure:"screen"`

	Area struct {
		SizeInCanvas float64 `mapstructure:"sizeInCanvas"`
		VisualWidth  float64 `mapstructure:"visualWidth"`
		VisualHeight float64 `mapstructure:"visualHeight"`
	} `mapstructure:"area"`

	Pool struct {
		PlayerBullets int `mapstructure:"playerBullets"`
		EnemyBullets  int `mapstructure:"enemyBullets"`
	} `mapstructure:"pool"`

	Bullet struct {
		RecycleDelayMs float64 `mapstructure:"recycleDelayMs"`
	} `mapstructure:"bullet"`

	Player struct {
		MaxHealth  float64 `mapstructure:"maxHealth"`
		ShotSpeed  float64 `mapstructure:"shotSpeed"`
		ShotDamage float64 `mapstructure:"shotDamage"`
	} `mapstructure:"player"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 1)
	v.SetDefault("stageId", "stage1")

	v.SetDefault("screen.width", 480)
	v.SetDefault("screen.height", 640)

	v.SetDefault("area.sizeInCanvas", 640)
	v.SetDefault("area.visualWidth", 480)
	v.SetDefault("area.visualHeight", 640)

	v.SetDefault("pool.playerBullets", 64)
	v.SetDefault("pool.enemyBullets", 512)

	v.SetDefault("bullet.recycleDelayMs", 200)

	v.SetDefault("player.maxHealth", 10)
	v.SetDefault("player.shotSpeed", 1.2)
	v.SetDefault("player.shotDamage", 1)
}

// LoadConfig reads configDir/shooter.cfg.json over the defaults.
// A missing file leaves the defaults; a malformed one is an error.
func LoadConfig(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigFileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("SHOOTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}
