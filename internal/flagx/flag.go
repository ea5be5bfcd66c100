// Package flagx helps several packages share os.Args: each one picks only the
// flags it understands and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// ConfigEnv names the environment variable consulted when no -c/-config
// flag is given.
const ConfigEnv = "PAYBOOK_CONFIG"

// FilterArgs keeps only the flags listed in allowed together with their
// values. Both "-f value" and "-f=value" forms are recognised; a token that
// starts with '-' is never consumed as a value.
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := known[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := known[arg]; !ok {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigPath returns the JSON config file path given with -c or -config in
// args, falling back to $PAYBOOK_CONFIG. Empty means no file.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	return path
}
