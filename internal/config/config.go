// Package config loads code input settings from TOML, YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/codebox/boxes"
	"github.com/iw2rmb/codebox/codeinput"
)

// File is the on-disk settings format. Every key is optional; absent keys
// leave the running configuration unchanged.
type File struct {
	CodeLength *int  `toml:"code_length" yaml:"code_length" json:"code_length"`
	CharsCode  *bool `toml:"chars_code" yaml:"chars_code" json:"chars_code"`
	// Deprecated: use chars_code.
	NonDigitsCode *bool `toml:"non_digits_code" yaml:"non_digits_code" json:"non_digits_code"`

	CodeHidden                    *bool `toml:"code_hidden" yaml:"code_hidden" json:"code_hidden"`
	PrevFocusableAfterClearing    *bool `toml:"prev_focusable_after_clearing" yaml:"prev_focusable_after_clearing" json:"prev_focusable_after_clearing"`
	FocusingOnLastByClickIfFilled *bool `toml:"focusing_on_last_by_click_if_filled" yaml:"focusing_on_last_by_click_if_filled" json:"focusing_on_last_by_click_if_filled"`
	InitialFocusField             *int  `toml:"initial_focus_field" yaml:"initial_focus_field" json:"initial_focus_field"`
	Disabled                      *bool `toml:"disabled" yaml:"disabled" json:"disabled"`

	Code *Code `toml:"code" yaml:"code" json:"code"`

	InputMode      *string `toml:"input_mode" yaml:"input_mode" json:"input_mode"`
	Autocapitalize *string `toml:"autocapitalize" yaml:"autocapitalize" json:"autocapitalize"`
	EmitDelayMs    *int    `toml:"emit_delay_ms" yaml:"emit_delay_ms" json:"emit_delay_ms"`

	unknown []string
}

// Load reads and validates the settings file at path. The format follows the
// file extension; files without a known extension are tried as TOML, JSON and
// YAML in that order.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Parse decodes data in the format named by ext (".toml", ".yaml", ".yml",
// ".json"). An empty or unknown ext auto-detects the format.
func Parse(data []byte, ext string) (*File, error) {
	f := &File{}
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
		f.setUndecoded(md)
	case ".json":
		if err := json.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if md, err := toml.Decode(string(data), f); err == nil {
			f.setUndecoded(md)
			return f, nil
		}
		*f = File{}
		if err := json.Unmarshal(data, f); err == nil {
			return f, nil
		}
		*f = File{}
		if err := yaml.Unmarshal(data, f); err == nil {
			return f, nil
		}
		return nil, fmt.Errorf("parse config: unable to detect format (tried TOML, JSON, YAML)")
	}
	return f, nil
}

func (f *File) setUndecoded(md toml.MetaData) {
	for _, k := range md.Undecoded() {
		f.unknown = append(f.unknown, k.String())
	}
}

// Unknown returns the TOML keys that did not match any setting.
func (f *File) Unknown() []string { return f.unknown }

// Validate rejects settings that no input could use.
func (f *File) Validate() error {
	if f.CodeLength != nil && *f.CodeLength <= 0 {
		return fmt.Errorf("%w: code_length must be positive, got %d", codeinput.ErrInvalidConfig, *f.CodeLength)
	}
	if f.InitialFocusField != nil {
		i := *f.InitialFocusField
		if i < 0 {
			return fmt.Errorf("%w: initial_focus_field must not be negative, got %d", codeinput.ErrInvalidConfig, i)
		}
		if f.CodeLength != nil && i >= *f.CodeLength {
			return fmt.Errorf("%w: initial_focus_field %d must be less than code_length %d", codeinput.ErrInvalidConfig, i, *f.CodeLength)
		}
	}
	if f.EmitDelayMs != nil && *f.EmitDelayMs < 0 {
		return fmt.Errorf("%w: emit_delay_ms must not be negative", codeinput.ErrInvalidConfig)
	}
	return nil
}

// Overrides converts the file into a partial code input configuration.
func (f *File) Overrides() codeinput.Overrides {
	o := codeinput.Overrides{
		CodeLength:               f.CodeLength,
		Hidden:                   f.CodeHidden,
		PrevFocusableAfterClear:  f.PrevFocusableAfterClearing,
		FocusLastOnClickIfFilled: f.FocusingOnLastByClickIfFilled,
		InitialFocusIndex:        f.InitialFocusField,
		Disabled:                 f.Disabled,
		InputMode:                f.InputMode,
		Autocapitalize:           f.Autocapitalize,
	}

	chars := f.CharsCode
	if chars == nil {
		chars = f.NonDigitsCode
	}
	if chars != nil {
		p := boxes.PolicyDigits
		if *chars {
			p = boxes.PolicyAny
		}
		o.Policy = &p
	}

	if f.Code != nil {
		s := string(*f.Code)
		o.Code = &s
	}
	if f.EmitDelayMs != nil {
		d := time.Duration(*f.EmitDelayMs) * time.Millisecond
		o.EmitDelay = &d
	}
	return o
}

// Code is a code value written either as a string or as an integer.
type Code string

func (c *Code) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*c = Code(v)
	case int64:
		*c = Code(strconv.FormatInt(v, 10))
	default:
		return fmt.Errorf("code: unsupported value %v (%T)", v, v)
	}
	return nil
}

func (c *Code) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("code: line %d: expected a scalar", n.Line)
	}
	*c = Code(n.Value)
	return nil
}

func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Code(s)
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("code: expected a string or an integer, got %s", data)
	}
	*c = Code(strconv.FormatInt(n, 10))
	return nil
}
