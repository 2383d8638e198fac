// Package flagx narrows command-line arguments down to the flags a single
// component owns, so several independent flag sets can read os.Args without
// failing on each other's flags.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the flags listed in valueFlags or boolFlags, together
// with their values.
//
// Accepted forms:
//
//	-d postgres://...    value flag followed by its value
//	-d=postgres://...    value flag with inline value
//	-p                   bool flag; never consumes the next token
//	-p=false             bool flag with inline value
//
// A value flag consumes the next token only when it does not start with '-'.
// The result is never nil.
func FilterArgs(args []string, valueFlags []string, boolFlags []string) []string {
	values := toSet(valueFlags)
	bools := toSet(boolFlags)

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, inline := strings.Cut(arg, "=")
		_, isValue := values[name]
		_, isBool := bools[name]

		switch {
		case !isValue && !isBool:
			continue
		case inline || isBool:
			filtered = append(filtered, arg)
		default:
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// ConfigFileFlag returns the JSON config path given via -c or -config, or an
// empty string when neither is present. When both appear the last one wins.
func ConfigFileFlag(args []string) string {
	var config string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "path to config file")
	fs.StringVar(&config, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}, nil))

	return config
}
