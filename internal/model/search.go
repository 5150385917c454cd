package model

import "strings"

// FieldKind is UI kind of search input
type FieldKind string

const (
	// FieldKindInput is free-text box
	FieldKindInput FieldKind = "input"
	// FieldKindDate is date picker
	FieldKindDate FieldKind = "date"
	// FieldKindSelect is single-choice dropdown
	FieldKindSelect FieldKind = "select"
)

// FieldOption is (value, label) pair of select field
type FieldOption struct {
	Value string `json:"value" validate:"required"`
	Label string `json:"label" validate:"required"`
}

// FieldConfig describes single search input
type FieldConfig struct {
	Kind        FieldKind     `json:"uiType" validate:"required"`
	Label       string        `json:"label" validate:"required"`
	Placeholder string        `json:"placeholder,omitempty"`
	RenderOrder int           `json:"renderOrder"`
	Options     []FieldOption `json:"options,omitempty" validate:"required_if=Kind select,dive"`
	Required    bool          `json:"required,omitempty"`
}

// SearchFieldsConfig maps criterion name to its input description
type SearchFieldsConfig map[string]FieldConfig

// ResultFieldConfig describes single result column.
// Formatter is looked up by Key, see searchcfg.Formatters.
type ResultFieldConfig struct {
	Key         string `json:"key" validate:"required"`
	Label       string `json:"label" validate:"required"`
	RenderOrder int    `json:"renderOrder"`
}

// SearchConfig is complete configuration of search page
type SearchConfig struct {
	Fields       SearchFieldsConfig  `json:"fields" validate:"required,dive"`
	ResultFields []ResultFieldConfig `json:"resultFields" validate:"required,dive"`
}

// SearchCriteria maps field key to the text entered by user.
// Absent or blank values mean no constraint.
type SearchCriteria map[string]string

// IsBlank reports whether no criterion carries a non-blank value
func (sc SearchCriteria) IsBlank() bool {
	for _, v := range sc {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Clone returns copy of criteria
func (sc SearchCriteria) Clone() SearchCriteria {
	c := make(SearchCriteria, len(sc))
	for k, v := range sc {
		c[k] = v
	}
	return c
}
