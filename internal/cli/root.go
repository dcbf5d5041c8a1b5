package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kotaroooo0/tossicat"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
	debug   bool

	logger      *zap.Logger
	engine      *tossicat.Engine
	closeEngine func() error
)

var rootCmd = &cobra.Command{
	Use:   "tossicat",
	Short: "Attach Korean particles to words",
	Long: `tossicat picks the particle form that fits the final sound of a word:
은/는, 이/가, 을/를, 와/과, (으)로 and the other (이)- particles.

Configuration (highest to lowest priority):
1. CLI flags
2. Environment variables (TOSSICAT_*)
3. Config file (~/.tossicat/config.yaml)
4. Defaults`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		c, err := loadConfig()
		if err != nil {
			return err
		}
		engine, closeEngine, err = tossicat.NewFromConfig(c, logger)
		if err != nil {
			return fmt.Errorf("failed to build engine: %w", err)
		}
		logger.Debug("engine ready",
			zap.Int("max_word_length", c.MaxWordLength),
			zap.Int("readings", len(c.Readings)),
			zap.Bool("japanese", c.Japanese),
			zap.Bool("mysql", c.MySQL != nil))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeEngine != nil {
			if err := closeEngine(); err != nil {
				logger.Warn("failed to close engine", zap.Error(err))
			}
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.tossicat/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&debug, "debug", false, "dump decompositions and resolutions to stderr")
	flags.Bool("japanese", false, "read Japanese words with kagome")
	flags.Int("max-word-length", tossicat.DefaultMaxWordLength, "longest accepted word, 0 for no limit")

	_ = viper.BindPFlag("japanese", flags.Lookup("japanese"))
	_ = viper.BindPFlag("max_word_length", flags.Lookup("max-word-length"))

	rootCmd.AddCommand(postfixCmd, pickCmd, transformCmd, sentenceCmd, verifyCmd, exampleCmd, configCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".tossicat"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// TOSSICAT_MAX_WORD_LENGTH, TOSSICAT_JAPANESE, TOSSICAT_CACHE_TTL
	viper.SetEnvPrefix("TOSSICAT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig reads the config file with tossicat.LoadConfig and lays flags
// and environment variables over it.
func loadConfig() (tossicat.Config, error) {
	c := tossicat.DefaultConfig()
	if path := viper.ConfigFileUsed(); path != "" {
		var err error
		if c, err = tossicat.LoadConfig(path); err != nil {
			return tossicat.Config{}, err
		}
	}
	if viper.IsSet("max_word_length") {
		c.MaxWordLength = viper.GetInt("max_word_length")
	}
	if viper.IsSet("japanese") {
		c.Japanese = viper.GetBool("japanese")
	}
	if viper.IsSet("cache_ttl") {
		c.CacheTTL = viper.GetDuration("cache_ttl")
	}
	return c, nil
}
