package render

import (
	"net/url"
	"sort"

	"github.com/umalmyha/customer-search/internal/model"
)

const (
	blankOptionLabel  = "Select..."
	submitLabel       = "Search"
	submitLabelActive = "Searching..."
)

// ControlKind is kind of rendered form control
type ControlKind int

const (
	// TextInput is free-text box
	TextInput ControlKind = iota
	// DateInput is date picker
	DateInput
	// SelectInput is single-choice dropdown
	SelectInput
)

// ControlKindOf maps configured field kind to control, unknown kinds fall back to TextInput
func ControlKindOf(k model.FieldKind) ControlKind {
	switch k {
	case model.FieldKindDate:
		return DateInput
	case model.FieldKindSelect:
		return SelectInput
	default:
		return TextInput
	}
}

// Option is dropdown entry
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Control is single editable form control
type Control struct {
	Key         string
	Kind        ControlKind
	Label       string
	Placeholder string
	Required    bool
	Value       string
	Options     []Option
}

// IsText reports whether control renders as free-text box
func (c Control) IsText() bool { return c.Kind == TextInput }

// IsDate reports whether control renders as date picker
func (c Control) IsDate() bool { return c.Kind == DateInput }

// IsSelect reports whether control renders as dropdown
func (c Control) IsSelect() bool { return c.Kind == SelectInput }

// FormView is search form ready to be rendered
type FormView struct {
	Controls       []Control
	Searching      bool
	SubmitLabel    string
	SubmitDisabled bool
	ClearDisabled  bool
}

type keyedField struct {
	key string
	cfg model.FieldConfig
}

// Form builds one control per configured field ordered by render order.
// Clear is disabled when nothing is entered and no search is in flight.
func Form(fields model.SearchFieldsConfig, criteria model.SearchCriteria, searching bool) FormView {
	view := FormView{
		Controls:       make([]Control, 0, len(fields)),
		Searching:      searching,
		SubmitLabel:    submitLabel,
		SubmitDisabled: searching,
		ClearDisabled:  criteria.IsBlank() && !searching,
	}

	if searching {
		view.SubmitLabel = submitLabelActive
	}

	for _, f := range sortedFields(fields) {
		view.Controls = append(view.Controls, control(f.key, f.cfg, criteria[f.key]))
	}
	return view
}

// Criteria extracts criteria of configured fields from submitted form values
func Criteria(fields model.SearchFieldsConfig, values url.Values) model.SearchCriteria {
	criteria := make(model.SearchCriteria, len(fields))
	for key := range fields {
		if v := values.Get(key); v != "" {
			criteria[key] = v
		}
	}
	return criteria
}

func control(key string, cfg model.FieldConfig, value string) Control {
	c := Control{
		Key:         key,
		Kind:        ControlKindOf(cfg.Kind),
		Label:       cfg.Label,
		Placeholder: cfg.Placeholder,
		Required:    cfg.Required,
		Value:       value,
	}

	switch c.Kind {
	case SelectInput:
		c.Options = make([]Option, 0, len(cfg.Options)+1)
		c.Options = append(c.Options, Option{Value: "", Label: blankOptionLabel, Selected: value == ""})
		for _, o := range cfg.Options {
			c.Options = append(c.Options, Option{Value: o.Value, Label: o.Label, Selected: o.Value == value})
		}
	case DateInput:
		c.Placeholder = ""
	}
	return c
}

// sortedFields orders fields by render order, ties broken by key
func sortedFields(fields model.SearchFieldsConfig) []keyedField {
	res := make([]keyedField, 0, len(fields))
	for k, cfg := range fields {
		res = append(res, keyedField{key: k, cfg: cfg})
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].cfg.RenderOrder != res[j].cfg.RenderOrder {
			return res[i].cfg.RenderOrder < res[j].cfg.RenderOrder
		}
		return res[i].key < res[j].key
	})
	return res
}
