package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/podwiki/wikidoc/filter"
)

type configuration struct {
	CommentBlocks       bool              `json:"comment_blocks"`
	CommentPrefixLength int               `json:"comment_prefix_length"`
	Keywords            map[string]string `json:"keywords"`
}

func defaultConfig() configuration {
	return configuration{
		CommentPrefixLength: 3,
		Keywords:            map[string]string{},
	}
}

func configFromBytes(fileBytes []byte) (configuration, error) {
	config := defaultConfig()
	if err := json.Unmarshal(fileBytes, &config); err != nil {
		return configuration{}, errors.Wrap(err, "could not parse config")
	}
	return config, nil
}

// loadConfig reads the configuration file at path. A missing file is not
// an error; every option has a default.
func loadConfig(path string) (configuration, error) {
	fileBytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return configuration{}, errors.Wrap(err, "could not open config")
	}
	return configFromBytes(fileBytes)
}

func (c configuration) filterOptions() filter.Options {
	return filter.Options{
		CommentBlocks:       c.CommentBlocks,
		CommentPrefixLength: c.CommentPrefixLength,
		Keywords:            c.Keywords,
	}
}
