package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "SHOPFEED_CONFIG_FILE"

type feed struct {
	IncludeTax bool   `mapstructure:"include_tax"`
	OutputDir  string `mapstructure:"output_dir"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	FeedRunsTopic      string   `mapstructure:"feed_runs_topic"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	SQLDB          string     `mapstructure:"sql_db"`
	CDNBaseURL     string     `mapstructure:"cdn_base_url"`
	Feed           feed       `mapstructure:"feed"`
	Broker         broker     `mapstructure:"broker"`
}

// NotifyRuns reports whether a broker is configured; without one the
// application works, it just emits no feed-run events.
func (c Config) NotifyRuns() bool {
	return len(c.Broker.SeedBrokers) != 0
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	SQLDB=%q
	CDNBaseURL=%q

	Feed:
	IncludeTax=%v
	OutputDir=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	FeedRunsTopic=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.SQLDB,
		c.CDNBaseURL,
		c.Feed.IncludeTax,
		c.Feed.OutputDir,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.FeedRunsTopic,
	)
}
