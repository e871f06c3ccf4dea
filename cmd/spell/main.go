package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/darkclainer/webster/pkg/render"
	"github.com/darkclainer/webster/pkg/spell"
)

const (
	name    = "spell"
	version = "0.1.0"
)

const (
	codeErrorArgs = iota + 1
	codeInternalError
)

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(code)
}

type Config struct {
	Incorrect bool
	Stdin     bool
	Debug     bool
	NoColor   bool `mapstructure:"no-color"`
}

func getConfig() (*Config, []string, error) {
	pflag.StringP("config", "c", "config.yaml", "path to local config")
	pflag.BoolP("incorrect", "i", false, "only show the incorrect words")
	pflag.BoolP("stdin", "s", false, "read words from stdin")
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
	viper.SetEnvPrefix("SPELL")
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

func newLogger(debug bool) (*zap.Logger, error) {
	zapConf := zap.NewDevelopmentConfig()
	zapConf.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		zapConf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zapConf.Build()
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("can not read words: %w", err)
	}
	return words, nil
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

	if conf.Stdin {
		words, err = readWords(os.Stdin)
		if err != nil {
			exitf(codeInternalError, "Failure while reading stdin: %s\n", err)
		}
	}
	if len(words) == 0 {
		exitf(codeErrorArgs, "Nothing to check, pass words or use --stdin.\n")
	}

	checker, err := spell.New(nil)
	if err != nil {
		if errors.Is(err, spell.ErrNotSupported) {
			fmt.Println(render.Errorf("Error:\n%s", err))
			os.Exit(codeErrorArgs)
		}
		exitf(codeInternalError, "Failure while starting spell checker: %s\n", err)
	}

	results, err := checker.CheckWords(context.Background(), words)
	if err != nil {
		logger.Error("spell check failed", zap.Error(err))
		fmt.Println(render.Errorf("Spell check failed: %s", err))
		os.Exit(codeInternalError)
	}

	misspelled := 0
	for _, result := range results {
		if result.Correct {
			if !conf.Incorrect {
				fmt.Println(render.Correct(result.Word))
			}
			continue
		}
		misspelled++
		fmt.Printf("\n%s\n", render.Suggestions(result.Word, result.Suggestions))
	}
	// Exit code is the number of misspelled words.
	os.Exit(misspelled)
}
