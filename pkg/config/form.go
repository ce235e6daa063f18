package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwidgets/pkg/model"
)

// ErrUnsupportedFormat is returned for form files that are not JSON, YAML or
// TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported form file format")

// LoadForm reads a form definition from path. The format is picked from the
// file extension.
func LoadForm(path string) (model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseForm(data, path)
}

// LoadFormFS is LoadForm against fsys.
func LoadFormFS(fsys fs.FS, path string) (model.Form, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.Form{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseForm(data, path)
}

// ParseForm decodes data using the format implied by name's extension and
// validates the resulting form.
func ParseForm(data []byte, name string) (model.Form, error) {
	var form model.Form

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &form); err != nil {
			return model.Form{}, fmt.Errorf("config: parse %s: %w", name, err)
		}
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&form); err != nil {
			return model.Form{}, fmt.Errorf("config: parse %s: %w", name, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&form); err != nil {
			return model.Form{}, fmt.Errorf("config: parse %s: %w", name, err)
		}
	default:
		return model.Form{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	if err := form.Validate(); err != nil {
		return model.Form{}, fmt.Errorf("config: %s: %w", name, err)
	}
	return form, nil
}

// Experience levels offered by the default form.
var ExperienceOptions = []model.Option{
	{Value: "Beginner", Label: "Starting from scratch"},
	{Value: "Learner", Label: "Know basic concepts"},
	{Value: "Builder", Label: "Made small projects"},
	{Value: "Inventor", Label: "Created own projects"},
}

// DefaultForm is the contact form used when no definition is supplied.
func DefaultForm() model.Form {
	return model.Form{
		ID:          "contact",
		Title:       "Find your course",
		Action:      "/contact",
		Method:      "post",
		SubmitLabel: "Send",
		Fields: []model.Field{
			{
				Name:     "name",
				Label:    "Your Name:",
				Type:     model.FieldTypeString,
				Required: true,
			},
			{
				Name:     "phone",
				ID:       "id_phone",
				Label:    "Contact Phone Number:",
				Type:     model.FieldTypeString,
				Format:   model.FormatPhone,
				Required: true,
			},
			{
				Name:     "experience",
				Label:    "Programming / Robotics Experience:",
				Type:     model.FieldTypeChoice,
				Required: true,
				Options:  append([]model.Option(nil), ExperienceOptions...),
			},
			{
				Name:  "message",
				Label: "Message:",
				Type:  model.FieldTypeString,
			},
		},
	}
}
