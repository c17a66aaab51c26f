package config

import (
	"fmt"
	"os"
)

func Template() string {
	return replayTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(replayTemplate), 0o600)
}

const replayTemplate = `# capture file to replay; "-" reads stdin
input = "captures/game.jsonc"

# auto | json | cbor (auto picks by file extension)
format = "auto"

# stop at the first malformed record instead of skipping it
strict = false

[log]
level = "info"
timestamp = true
no_color = false
`
