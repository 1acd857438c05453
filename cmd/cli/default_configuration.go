package cli

import (
	"bytes"
	_ "embed"
)

// defaultConfigurationContent mirrors the values each command registers as defaults so that a
// fresh install documents every supported key.
//
//go:embed default_config.yaml
var defaultConfigurationContent []byte

// EmbeddedDefaultConfiguration returns a copy of the bundled configuration and its encoding.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return bytes.Clone(defaultConfigurationContent), configurationTypeConstant
}
