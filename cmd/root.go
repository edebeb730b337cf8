package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"
	"vincit.fi/image-triage/backend"
	"vincit.fi/image-triage/backend/fileio"
	"vincit.fi/image-triage/backend/session"
	"vincit.fi/image-triage/common"
	"vincit.fi/image-triage/common/constants"
	"vincit.fi/image-triage/common/logger"
	"vincit.fi/image-triage/ui/tui"
)

const (
	keyCategories     = "categories"
	keyMaxWidth       = "maxWidth"
	keyMaxHeight      = "maxHeight"
	keyInputMode      = "inputMode"
	keyJpegQuality    = "jpegQuality"
	keyAutoOrient     = "autoOrient"
	keyMaxHistory     = "maxHistory"
	keyInclude        = "include"
	keyLogLevel       = "logLevel"
	keyLogFile        = "logFile"
	keyCategoriesFile = "categoriesFile"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "image-triage [flags] <sourceDir> <destDir>",
	Short: "Sort images into category folders one at a time",
	Long: `image-triage shows the images of a source directory one at a time and
moves each one into a category folder under the destination directory.

Images can be rotated and flipped before they are saved, and the last
decisions can be undone. Files that can not be opened are moved to the
"error" folder.

Examples:
  image-triage ~/Pictures/inbox ~/Pictures/sorted
  image-triage --categories "keep,delete,maybe" --input-mode single in out`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runTriage,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/image-triage/config.toml)")
	flags.String("categories", "", "comma separated category names, the last used ones by default")
	flags.Int("max-width", constants.DefaultMaxWidth, "images wider than this are moved to the error folder")
	flags.Int("max-height", constants.DefaultMaxHeight, "images taller than this are moved to the error folder")
	flags.String("input-mode", string(common.BufferedInput), "'buffered' to confirm numbers with space or enter, 'single' to classify with one key")
	flags.Int("jpeg-quality", constants.DefaultJpegQuality, "quality of saved JPEG images")
	flags.Bool("auto-orient", false, "rotate images according to their EXIF orientation when loading")
	flags.Int("max-history", 0, "how many decisions can be undone, 0 for no limit")
	flags.StringSlice("include", nil, "only show files matching these patterns, e.g. 'IMG_*.jpg'")
	flags.String("log-level", "INFO", "ERROR, WARN, INFO, DEBUG or TRACE")
	flags.String("log-file", "", "log file (default is ~/.image-triage/image-triage.log)")
	flags.String("categories-file", "", "file where the categories are saved (default is ~/.image-triage/categories)")

	bindFlag(keyCategories, "categories")
	bindFlag(keyMaxWidth, "max-width")
	bindFlag(keyMaxHeight, "max-height")
	bindFlag(keyInputMode, "input-mode")
	bindFlag(keyJpegQuality, "jpeg-quality")
	bindFlag(keyAutoOrient, "auto-orient")
	bindFlag(keyMaxHistory, "max-history")
	bindFlag(keyInclude, "include")
	bindFlag(keyLogLevel, "log-level")
	bindFlag(keyLogFile, "log-file")
	bindFlag(keyCategoriesFile, "categories-file")
}

func bindFlag(key string, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(configDir, "image-triage"))
		}
		viper.SetConfigType("toml")
		viper.SetConfigName(constants.ConfigFileName)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(keyInputMode, string(common.BufferedInput))
	viper.SetDefault(keyMaxWidth, constants.DefaultMaxWidth)
	viper.SetDefault(keyMaxHeight, constants.DefaultMaxHeight)
	viper.SetDefault(keyJpegQuality, constants.DefaultJpegQuality)
	viper.SetDefault(keyLogLevel, "INFO")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Could not read config file:", err)
	}
}

func runTriage(cmd *cobra.Command, args []string) error {
	params, err := buildParams(viper.GetViper(), args[0], args[1])
	if err != nil {
		return err
	}

	closeLog, err := initializeLogging(params)
	if err != nil {
		return err
	}
	defer closeLog()

	return runSession(params, afero.NewOsFs(), tui.Run, cmd.OutOrStdout())
}

// buildParams reads the settings and checks the two directories.
func buildParams(v *viper.Viper, sourceDir string, destDir string) (*common.Params, error) {
	inputMode := common.InputMode(v.GetString(keyInputMode))
	if inputMode != common.BufferedInput && inputMode != common.SingleKeyInput {
		return nil, errors.Errorf("invalid input mode '%s', expected '%s' or '%s'",
			inputMode, common.BufferedInput, common.SingleKeyInput)
	}
	quality := v.GetInt(keyJpegQuality)
	if quality < 1 || quality > 100 {
		return nil, errors.Errorf("invalid JPEG quality %d, expected 1-100", quality)
	}

	return common.NewParamsBuilder(sourceDir, destDir).
		Categories(common.SplitCategories(v.GetString(keyCategories))).
		MaxSize(v.GetInt(keyMaxWidth), v.GetInt(keyMaxHeight)).
		InputMode(inputMode).
		JpegQuality(quality).
		AutoOrient(v.GetBool(keyAutoOrient)).
		MaxHistory(v.GetInt(keyMaxHistory)).
		Include(v.GetStringSlice(keyInclude)).
		Logging(v.GetString(keyLogLevel), v.GetString(keyLogFile)).
		CategoriesFile(v.GetString(keyCategoriesFile)).
		Build(), nil
}

func validatePaths(fileSystem *fileio.FileSystem, sourceDir string, destDir string) error {
	if !fileSystem.IsDir(sourceDir) {
		return errors.Errorf("source directory '%s' does not exist or is not a directory", sourceDir)
	}
	if !fileSystem.IsDir(destDir) {
		return errors.Errorf("destination directory '%s' does not exist or is not a directory", destDir)
	}
	if fileio.SameDir(sourceDir, destDir) {
		return errors.Errorf("source and destination must be different directories")
	}
	return nil
}

func initializeLogging(params *common.Params) (func(), error) {
	logFile := params.LogFile()
	if logFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Errorf("could not find home directory: %w", err)
		}
		logFile = filepath.Join(home, constants.ImageTriageDir, "image-triage.log")
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, errors.Errorf("could not create log directory: %w", err)
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Errorf("could not open log file '%s': %w", logFile, err)
	}

	logger.Initialize(logger.StringToLogLevel(params.LogLevel()), file)
	return func() {
		logger.Discard()
		_ = file.Close()
	}, nil
}

// runSession starts a session over the directories of params, hands it to
// the host until the operator is done and prints what happened.
func runSession(params *common.Params, fs afero.Fs, host func(*session.Session) error, out io.Writer) error {
	services, err := backend.InitializeServices(params, fs)
	if err != nil {
		return err
	}
	if err := validatePaths(services.FileSystem, params.SourceDir(), params.DestDir()); err != nil {
		return err
	}

	s, err := services.StartSession(params)
	if err != nil {
		return err
	}
	defer services.Close()

	hostErr := host(s)
	printSummary(out, s)
	if hostErr != nil {
		return errors.Errorf("user interface failed: %w", hostErr)
	}
	return nil
}
