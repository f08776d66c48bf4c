package config

// RosterConfig is the root config for roster.yaml
type RosterConfig struct {
	Instincts []InstinctConfig `yaml:"instincts"`
}

type InstinctConfig struct {
	Name       string            `yaml:"name"`
	Motto      string            `yaml:"motto"`
	Lore       string            `yaml:"lore"`
	Characters []CharacterConfig `yaml:"characters"`
}

type CharacterConfig struct {
	Name     string       `yaml:"name"`
	Title    string       `yaml:"title"`
	Tagline  string       `yaml:"tagline"`
	Bio      string       `yaml:"bio"`
	Portrait *int         `yaml:"portrait,omitempty"` // Defaults to the running character index
	Stats    []StatConfig `yaml:"stats"`
}

// StatConfig keeps stats ordered; yaml maps would lose the display order
type StatConfig struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}
