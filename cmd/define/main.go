package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	name    = "define"
	version = "0.1.0"
)

const (
	codeErrorArgs = iota + 1
	codeInternalError
)

const (
	dictFileName = "websters_dict_plain.txt"
	dbFileName   = "websters_dict_plain.sqlite3"
)

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

type Config struct {
	Dict    string
	DB      string `mapstructure:"db"`
	Convert string
	Debug   bool
	NoColor bool `mapstructure:"no-color"`
}

func getConfig() (*Config, []string, error) {
	pflag.String("config", "config.yaml", "path to local config")
	pflag.String("dict", defaultPath(dictFileName), "path to the plain text dictionary")
	pflag.String("db", defaultPath(dbFileName), "path to the sqlite3 database")
	pflag.StringP("convert", "c", "",
		"convert the dictionary file to an sqlite3 database, '-' means the default path")
	pflag.BoolP("debug", "D", false, "enable debug logging")
	pflag.Bool("no-color", false, "disable colored output")
	showVersion := pflag.BoolP("version", "v", false, "show version")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("%s v. %s\n", name, version)
		os.Exit(0)
	}

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		return nil, nil, err
	}
	viper.SetEnvPrefix("DEFINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	readConfigFile(viper.GetString("config"))

	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, nil, fmt.Errorf("error while unmarshaling config: %w", err)
	}
	return &conf, pflag.Args(), nil
}

// readConfigFile loads an optional YAML config into viper. A missing
// or unreadable file is ignored, flags and environment still apply.
func readConfigFile(path string) {
	if path == "" {
		return
	}
	viper.SetConfigFile(path)
	_ = viper.ReadInConfig()
}

// defaultPath places dictionary files next to the executable, the way
// the tool is usually installed.
func defaultPath(file string) string {
	exe, err := os.Executable()
	if err != nil {
		return file
	}
	return filepath.Join(filepath.Dir(exe), file)
}

func newLogger(debug bool) (*zap.Logger, error) {
	zapConf := zap.NewDevelopmentConfig()
	zapConf.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		zapConf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zapConf.Build()
}

func main() {
	conf, words, err := getConfig()
	if err != nil {
		exitf(codeErrorArgs, "Failure while parsing arguments: %s\n", err)
	}
	logger, err := newLogger(conf.Debug)
	if err != nil {
		exitf(codeErrorArgs, "Failure while instatiating logger: %s\n", err)
	}
	defer func() { _ = logger.Sync() }()
	if conf.NoColor {
		color.NoColor = true
	}

	if conf.Convert != "" {
		os.Exit(runConvert(conf, logger))
	}
	if len(words) == 0 {
		exitf(codeErrorArgs, "Nothing to define, pass one or more words.\n")
	}
	os.Exit(runLookup(conf, logger, words))
}
