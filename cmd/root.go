package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-ranking"
)

type Config struct {
	Datasets *DatasetsConfig `mapstructure:"datasets"`
	Ranking  *RankingConfig  `mapstructure:"ranking"`
	Export   *ExportConfig   `mapstructure:"export"`
}

type DatasetsConfig struct {
	Resumes string `mapstructure:"resumes"`
	Jobs    string `mapstructure:"jobs"`
}

type RankingConfig struct {
	Top     int `mapstructure:"top"`
	Workers int `mapstructure:"workers"`
}

type ExportConfig struct {
	File string `mapstructure:"file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-ranking is a cli for ranking resume datasets against job postings by skill similarity",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("datasets.resumes", "RESUME_DATASET"); err != nil {
		log.Fatalf("binding RESUME_DATASET environment variable: %v", err)
	}
	if err := viper.BindEnv("datasets.jobs", "JOB_DATASET"); err != nil {
		log.Fatalf("binding JOB_DATASET environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-ranking.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The datasets can be supplied entirely via flags, so a missing
		// default config file is fine. An explicit --config must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Datasets == nil {
		config.Datasets = &DatasetsConfig{}
	}
	if config.Ranking == nil {
		config.Ranking = &RankingConfig{}
	}
	if config.Export == nil {
		config.Export = &ExportConfig{}
	}

	return config, nil
}
