package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go
// templates. {{.VAR_NAME}} syntax is used instead of $VAR to avoid
// colliding with literal dollar signs in profile values.
//
// Missing variables expand to empty string; validation catches required
// fields that end up empty.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// YAML without template syntax passes through untouched.
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
