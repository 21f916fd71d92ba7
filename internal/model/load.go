package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/emerald/internal/errors"
)

// Load reads a host model dump. Files ending in .json are decoded as JSON, anything
// else as YAML. The result is normalized and validated.
func Load(path string) (*Static, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryConfig, ferrors.SeverityFatal, "read host model").
			WithContext("path", path)
	}

	s, err := Decode(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return nil, ferrors.Wrap(err, ferrors.CategoryModel, ferrors.SeverityFatal, "decode host model").
			WithContext("path", path)
	}
	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Decode parses and normalizes a model document without touching the filesystem.
func Decode(data []byte, isJSON bool) (*Static, error) {
	var s Static
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	}
	Normalize(&s)
	return &s, nil
}
