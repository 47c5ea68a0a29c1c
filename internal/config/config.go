// Package config reads the environment-driven settings shared by the
// levspell command-line tools.
package config

import "os"

// DictPathEnv is the environment variable naming the dictionary file
// to load at startup.
const DictPathEnv = "LEV_SPELL_CHECK_DICT_PATH"

// DefaultDictPath is used when DictPathEnv is unset.
const DefaultDictPath = "/usr/share/dict/words"

// DictPath returns the configured dictionary path, falling back to
// DefaultDictPath.
func DictPath() string {
	if v, ok := os.LookupEnv(DictPathEnv); ok && v != "" {
		return v
	}
	return DefaultDictPath
}
