package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	corval "github.com/mkondo/corval"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "corval CLI\n\nUsage:\n  corval validate -schema schema.(json|yaml) [-input input.json] [-strict] [-failfast]\n\nNotes:\n  - Input is read from stdin when -input is omitted.\n  - Exit code 1 means the input failed validation; issues are printed one per line.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath, inputPath string
	var strict, failFast bool
	fs.StringVar(&schemaPath, "schema", "", "schema document (.json, .yaml or .yml)")
	fs.StringVar(&inputPath, "input", "", "input JSON file (default: stdin)")
	fs.BoolVar(&strict, "strict", false, "disable lax coercion")
	fs.BoolVar(&failFast, "failfast", false, "stop at the first issue")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	schema, err := loadSchema(schemaPath)
	if err != nil {
		fatal(err)
	}
	sv, err := corval.Compile(schema, &corval.Config{Strict: strict, FailFast: failFast})
	if err != nil {
		fatal(err)
	}

	input, err := readInput(inputPath)
	if err != nil {
		fatal(err)
	}
	out, err := sv.ParseJSON(context.Background(), input)
	if err != nil {
		if iss, ok := corval.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
			}
			os.Exit(1)
		}
		fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatal(err)
	}
}

func loadSchema(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return corval.SchemaFromYAML(data)
	default:
		return corval.SchemaFromJSON(data)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "corval:", err)
	os.Exit(1)
}
