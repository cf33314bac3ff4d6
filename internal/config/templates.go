package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "console":
		return consoleTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const consoleTemplate = `name = "kv-admin"
addr = ":9000"
base_path = "/console"
cors_origins = ["http://localhost:3000"]
auth_token = ""

excluded_commands = ["subscribe", "publish", "fromurl"]

[remapped_commands]
del = "delete"

[store.seed]
greeting = "hello"
`
