package yamlcatalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"gallery-service/internal/core/domain"
	"gallery-service/internal/core/ports/output"
)

type catalogFile struct {
	Exhibits []domain.ExhibitSource `yaml:"exhibits"`
}

type catalog struct {
	path string
}

// NewCatalog reads exhibits from a YAML file of the form
//
//	exhibits:
//	  - git: https://github.com/jupyter-widgets/tutorial.git
//	    title: Jupyter Widgets Tutorial
//
// The file is re-read on every List so edits show up without a restart.
func NewCatalog(path string) ports.ExhibitCatalog {
	return &catalog{path: path}
}

func (c *catalog) List(ctx context.Context) ([]domain.ExhibitSource, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithField("path", c.path).Warn("exhibits file not found, gallery has no exhibits")
			return []domain.ExhibitSource{}, nil
		}
		return nil, fmt.Errorf("read exhibits file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) ([]domain.ExhibitSource, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal exhibits file: %w", err)
	}

	for i, src := range file.Exhibits {
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("exhibit %d: %w", i, err)
		}
	}

	if file.Exhibits == nil {
		return []domain.ExhibitSource{}, nil
	}
	return file.Exhibits, nil
}
