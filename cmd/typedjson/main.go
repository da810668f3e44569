package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	typedjson "github.com/rmaeda/typedjson"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "normalize":
		normalizeCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "typedjson CLI\n\nUsage:\n  typedjson normalize [-format json|yaml|msgpack|cbor] [-in file] [-compact]\n  typedjson check [-format json|yaml|msgpack|cbor] [-in file]\n\nNotes:\n  - normalize re-emits the input as canonical JSON after tree normalization.\n  - check reports whether the input builds a valid JSON value tree.")
}

func normalizeCmd(args []string) {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	var format string
	var in string
	var compact bool
	fs.StringVar(&format, "format", "json", "input format: json, yaml, msgpack or cbor")
	fs.StringVar(&in, "in", "", "input file (defaults to stdin)")
	fs.BoolVar(&compact, "compact", false, "emit compact JSON instead of indented")
	_ = fs.Parse(args)

	v, err := parseInput(format, in)
	if err != nil {
		fatalf("parse: %v", err)
	}
	norm := typedjson.Encode(v)
	var out []byte
	if compact {
		out, err = typedjson.MarshalJSON(norm)
	} else {
		out, err = typedjson.MarshalJSONIndent(norm)
	}
	if err != nil {
		fatalf("marshal: %v", err)
	}
	fmt.Println(string(out))
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var format string
	var in string
	fs.StringVar(&format, "format", "json", "input format: json, yaml, msgpack or cbor")
	fs.StringVar(&in, "in", "", "input file (defaults to stdin)")
	_ = fs.Parse(args)

	v, err := parseInput(format, in)
	if err != nil {
		fatalf("parse: %v", err)
	}
	if !typedjson.Valid(v) {
		fatalf("input does not form a valid JSON value tree")
	}
	fmt.Println("ok")
}

func parseInput(format, in string) (any, error) {
	data, err := readInput(in)
	if err != nil {
		return nil, err
	}
	switch format {
	case "json":
		return typedjson.ParseJSON(data)
	case "yaml":
		return typedjson.ParseYAML(data)
	case "msgpack":
		return typedjson.ParseMsgpack(data)
	case "cbor":
		return typedjson.ParseCBOR(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func readInput(in string) ([]byte, error) {
	if in == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(in)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
