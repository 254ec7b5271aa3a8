package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
)

var outputFormatsCompletion = []string{"json", "text"}

// writeOutput prints result in the requested format. The text function is
// called only for text output.
func writeOutput(w io.Writer, format string, result any, text func() string) error {
	switch strings.ToLower(format) {
	case "", "text":
		out := text()
		if out == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, out)
		return err
	case "json":
		output, err := getOutputJSON(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(output))
		return err
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func getOutputJSON(result any) ([]byte, error) {
	if color.NoColor {
		return json.MarshalIndent(result, "", "  ")
	}
	return prettyjson.Marshal(result)
}
