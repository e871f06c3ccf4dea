package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/darkclainer/webster/pkg/querier"
	"github.com/darkclainer/webster/pkg/render"
)

func runConvert(conf *Config, logger *zap.Logger) int {
	output := conf.Convert
	if output == "-" {
		output = conf.DB
	}
	fmt.Println(render.Status("Converting file:", conf.Dict))

	ok, err := confirmOverwrite(os.Stdin, output)
	if err != nil {
		fmt.Println(render.Errorf("%s", err))
		return codeInternalError
	}
	if !ok {
		fmt.Println("\nUser cancelled.")
		return codeErrorArgs
	}

	f, err := os.Open(conf.Dict)
	if err != nil {
		fmt.Println(render.Errorf("Error opening dict file: %s", err))
		return codeInternalError
	}
	defer f.Close()

	if err := querier.Convert(context.Background(), f, output, logger); err != nil {
		fmt.Println(render.Errorf("Conversion failed: %s", err))
		return codeInternalError
	}
	fmt.Println(render.Status("\nFinished with the conversion:", output))
	return 0
}

// confirmOverwrite asks before replacing an existing file. A missing
// file needs no confirmation.
func confirmOverwrite(in io.Reader, path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	}
	fmt.Printf("\nThis file exists: %s\n\nOverwrite it? (y/N): ", path)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("can not read answer: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return strings.HasPrefix(answer, "y"), nil
}
