// SPDX-License-Identifier: MIT

package memory

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metropath/subway"
)

// ErrInvalidCatalog reports a catalog that cannot describe a network.
var ErrInvalidCatalog = errors.New("memory: invalid catalog")

// Catalog is a decoded network: every station and every line with its sections.
type Catalog struct {
	Stations []*subway.Station
	Lines    []*subway.Line
}

// LoadCatalog reads and maps a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memory: read catalog %s: %w", path, err)
	}

	return ParseCatalog(b)
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(b []byte) (*Catalog, error) {
	var dto YAMLCatalog
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	return MapCatalog(dto)
}

// MapCatalog validates dto and turns it into domain objects. Section
// endpoints must reference declared stations.
func MapCatalog(dto YAMLCatalog) (*Catalog, error) {
	c := &Catalog{
		Stations: make([]*subway.Station, 0, len(dto.Stations)),
		Lines:    make([]*subway.Line, 0, len(dto.Lines)),
	}

	byID := make(map[int64]*subway.Station, len(dto.Stations))
	for i, s := range dto.Stations {
		if strings.TrimSpace(s.Name) == "" {
			return nil, invalidField(fmt.Sprintf("stations[%d].name", i), "name is required")
		}
		if _, dup := byID[s.ID]; dup {
			return nil, invalidField(fmt.Sprintf("stations[%d].id", i), fmt.Sprintf("duplicate id %d", s.ID))
		}
		st := subway.NewStation(s.ID, s.Name)
		byID[s.ID] = st
		c.Stations = append(c.Stations, st)
	}

	for i, l := range dto.Lines {
		prefix := fmt.Sprintf("lines[%d]", i)
		if strings.TrimSpace(l.Name) == "" {
			return nil, invalidField(prefix+".name", "name is required")
		}
		surcharge, err := subway.NewFare(l.Surcharge)
		if err != nil {
			return nil, invalidField(prefix+".surcharge", err.Error())
		}

		line := subway.NewLine(l.Name, surcharge)
		for j, sec := range l.Sections {
			field := fmt.Sprintf("%s.sections[%d]", prefix, j)
			up, ok := byID[sec.Up]
			if !ok {
				return nil, invalidField(field+".up", fmt.Sprintf("unknown station %d", sec.Up))
			}
			down, ok := byID[sec.Down]
			if !ok {
				return nil, invalidField(field+".down", fmt.Sprintf("unknown station %d", sec.Down))
			}
			d, err := subway.NewDistance(sec.Distance)
			if err != nil {
				return nil, invalidField(field+".distance", err.Error())
			}
			if _, err := line.AddSection(up, down, d); err != nil {
				return nil, invalidField(field, err.Error())
			}
		}
		c.Lines = append(c.Lines, line)
	}

	return c, nil
}

func invalidField(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, field, msg)
}
