package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"

	"github.com/danderson/bridge"
)

// readInput returns the wire text read from stdin.
func readInput() (string, error) {
	bs, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	ret := strings.TrimSpace(string(bs))
	if ret == "" {
		return "", fmt.Errorf("no input on stdin")
	}
	return ret, nil
}

// emit prints v to stdout in the format selected by --format. The
// json and yaml formats print v's wire encoding.
func emit(ctx context.Context, v any) error {
	if globalArgs.Format == "pretty" {
		fmt.Printf("%# v\n", pretty.Formatter(v))
		return nil
	}

	w, err := bridge.Encode(ctx, v)
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	var bs []byte
	switch globalArgs.Format {
	case "json":
		bs, err = json.MarshalIndent(w, "", "  ")
		bs = append(bs, '\n')
	case "yaml":
		bs, err = yaml.Marshal(w)
	default:
		return fmt.Errorf("unknown output format %q", globalArgs.Format)
	}
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	_, err = os.Stdout.Write(bs)
	return err
}

func growTo(s []string, n int) []string {
	for len(s) < n {
		s = append(s, "")
	}
	return s
}
