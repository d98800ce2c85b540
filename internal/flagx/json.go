package flagx

import (
	"os"
	"strings"
)

// JsonConfigFlags scans os.Args for the -c/-config flag and returns the JSON
// config file path, or "" when none was given. It deliberately avoids
// flag.Parse so it can run before the main flag sets are defined.
func JsonConfigFlags() string {
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]

		for _, name := range []string{"-c", "--config", "-config"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if strings.HasPrefix(arg, name+"=") {
				return strings.TrimPrefix(arg, name+"=")
			}
		}
	}
	return ""
}
