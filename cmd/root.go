package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "talentscout"
)

// Config drives the screening assistant. All keys are optional and fall back
// to the defaults set in initConfig.
type Config struct {
	// DataDir is the directory holding the candidates collection.
	DataDir string `mapstructure:"data-dir"`
	// Questions is how many technical questions a screening asks.
	Questions int `mapstructure:"questions"`
	// RetentionMonths is the data retention window for stored records.
	RetentionMonths int `mapstructure:"retention-months"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentscout is a scripted hiring assistant for initial candidate screening",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentscout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Optional .env next to the binary, same as a local development setup.
	_ = godotenv.Load()

	viper.SetEnvPrefix(app)
	viper.AutomaticEnv()

	viper.SetDefault("data-dir", "data")
	viper.SetDefault("questions", 5)
	viper.SetDefault("retention-months", 12)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The assistant runs fine on defaults; a missing config file is only
		// fatal when it was requested explicitly.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
