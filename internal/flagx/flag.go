// Package flagx lets the config file lookup and the main flag set share
// os.Args without tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps the arguments naming one of the given flags, together with
// their values, and drops everything else. Names are given without dashes;
// "-x", "--x", "-x=v" and "--x=v" all match "x". A flag listed in boolFlags
// never consumes the next token, and no flag consumes a token starting with
// "-".
func FilterArgs(args []string, names []string, boolFlags ...string) []string {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = false
	}
	for _, n := range boolFlags {
		known[n] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name, hasValue, ok := flagName(arg)
		if !ok {
			continue
		}
		isBool, found := known[name]
		if !found {
			continue
		}
		out = append(out, arg)
		if hasValue || isBool {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// flagName splits "-name", "--name" and "-name=value".
func flagName(arg string) (name string, hasValue, ok bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false, false
	}
	name = strings.TrimPrefix(arg[1:], "-")
	if name == "" {
		return "", false, false
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		return name[:i], true, true
	}
	return name, false, true
}

// Parse parses the subset of args that fs defines, so flags owned by other
// flag sets are skipped instead of failing the parse.
func Parse(fs *flag.FlagSet, args []string) error {
	var names, bools []string
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			bools = append(bools, f.Name)
			return
		}
		names = append(names, f.Name)
	})
	return fs.Parse(FilterArgs(args, names, bools...))
}

// ConfigFile returns the path given with -c or -config in args, or "". When
// both appear the last one wins.
func ConfigFile(args []string) string {
	var path string
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file (JSON or YAML)")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = Parse(fs, args)
	return path
}

// ConfigFileFlag is ConfigFile over os.Args.
func ConfigFileFlag() string {
	return ConfigFile(os.Args[1:])
}
