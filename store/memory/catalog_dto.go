// SPDX-License-Identifier: MIT

package memory

// YAMLCatalog is the on-disk shape of a network catalog.
type YAMLCatalog struct {
	Stations []YAMLStation `yaml:"stations"`
	Lines    []YAMLLine    `yaml:"lines"`
}

type YAMLStation struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type YAMLLine struct {
	Name      string        `yaml:"name"`
	Surcharge int           `yaml:"surcharge"`
	Sections  []YAMLSection `yaml:"sections"`
}

type YAMLSection struct {
	Up       int64 `yaml:"up"`
	Down     int64 `yaml:"down"`
	Distance int   `yaml:"distance"`
}
