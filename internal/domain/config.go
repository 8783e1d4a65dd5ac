package domain

// ProfileConfig is an extension profile: a named set of extensions to
// encode in one pass, loaded from a YAML file.
type ProfileConfig struct {
	Name       string                    `yaml:"name"`
	Extensions map[string]ExtensionEntry `yaml:"extensions"`
}

// ExtensionEntry is one extension in a profile. Value uses the same
// textual mini-language the encoder accepts; the critical flag is kept
// separate here and folded into the value string during encoding.
type ExtensionEntry struct {
	Critical bool   `yaml:"critical"`
	Value    string `yaml:"value"`
}
