package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ppiankov/countrygen/internal/pipeline"
)

var (
	cfgFile   string
	verbose   bool
	configErr error // set by initConfig, reported by loadConfig
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "countrygen",
	Short: "countrygen - generate a C# country repository from the mledoze/countries dataset",
	Long: `countrygen downloads the mledoze/countries dataset, derives an identifier
for every country name and writes a source file with one declaration per
country, ordered by name.

Run without arguments to regenerate the file. The run aborts on the first
error and leaves the destination untouched unless the final write fails.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runGenerate,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number for countrygen.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("countrygen v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.countrygen/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	configErr = readConfig(viper.GetViper(), cfgFile)
	if configErr == nil && verbose && viper.ConfigFileUsed() != "" {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// readConfig points v at the config file and environment. A file named
// explicitly must exist and parse; the default file may be absent.
func readConfig(v *viper.Viper, explicit string) error {
	// COUNTRYGEN_SOURCE_URL, COUNTRYGEN_HTTP_TIMEOUT, ...
	v.SetEnvPrefix("COUNTRYGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", explicit, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("error finding home directory: %w", err)
	}
	v.AddConfigPath(home + "/.countrygen")
	v.SetConfigType("yaml")
	v.SetConfigName("config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// newLogger builds the console progress logger writing to stderr
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.DisableStacktrace = true
	config.DisableCaller = true
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	p, err := pipeline.NewPipeline(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return err
	}

	// No deadline: the HTTP client timeout bounds the download.
	result, err := p.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Wrote %d countries to %s (%d bytes)\n", result.Countries, result.DestinationPath, result.Bytes)
	return nil
}
