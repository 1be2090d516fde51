// Package flagx lets independent loaders pick their own flags out of a shared
// argument list without tripping over flags they do not define.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the flags named in valued (flags that take a value)
// and switches (boolean flags), in their original order.
//
// Accepted forms: "-c conf.json", "-c=conf.json", "--config=conf.json" and
// bare "-s" for switches. A valued flag consumes the next argument only when
// that argument does not itself look like a flag.
func FilterArgs(args []string, valued []string, switches ...string) []string {
	takesValue := make(map[string]bool, len(valued)+len(switches))
	for _, f := range valued {
		takesValue[f] = true
	}
	for _, f := range switches {
		takesValue[f] = false
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(arg, "=")
		needsValue, known := takesValue[name]
		if !known {
			continue
		}
		out = append(out, arg)

		if hasValue || !needsValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigPath returns the JSON config path passed via -c or -config, or an
// empty string when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
