// Package searchcfg holds the search page configuration: which inputs the form renders
// and which columns the results table shows. Column cells are produced by formatters
// registered under the column key, so each can be tested on its own.
package searchcfg

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/umalmyha/customer-search/internal/model"
)

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "January 2, 2006"
	notAvailable      = "N/A"
)

// Formatter produces display value of column for customer
type Formatter func(*model.Customer) string

// Formatters are column formatters keyed by column identifier
var Formatters = map[string]Formatter{
	"name":         FullName,
	"dateOfBirth":  DateOfBirth,
	"primaryPhone": PrimaryPhone,
	"primaryEmail": PrimaryEmail,
}

// Default returns search configuration used by search page
func Default() model.SearchConfig {
	return model.SearchConfig{
		Fields: model.SearchFieldsConfig{
			"firstName": {
				Kind:        model.FieldKindInput,
				Label:       "First Name",
				Placeholder: "Enter first name",
				RenderOrder: 1,
			},
			"lastName": {
				Kind:        model.FieldKindInput,
				Label:       "Last Name",
				Placeholder: "Enter last name",
				RenderOrder: 2,
			},
			"dateOfBirth": {
				Kind:        model.FieldKindDate,
				Label:       "Date of Birth",
				RenderOrder: 3,
			},
		},
		ResultFields: []model.ResultFieldConfig{
			{Key: "name", Label: "Full Name", RenderOrder: 1},
			{Key: "dateOfBirth", Label: "Date of Birth", RenderOrder: 2},
			{Key: "primaryPhone", Label: "Primary Phone", RenderOrder: 3},
			{Key: "primaryEmail", Label: "Primary Email", RenderOrder: 4},
		},
	}
}

// Validate checks configuration is well-formed and every column has formatter
func Validate(v *validator.Validate, cfg model.SearchConfig) error {
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("search configuration is invalid - %w", err)
	}

	for _, rf := range cfg.ResultFields {
		if _, ok := Formatters[rf.Key]; !ok {
			return fmt.Errorf("no formatter registered for result column %q", rf.Key)
		}
	}
	return nil
}

// Format applies formatter of column key, unknown keys produce empty cell
func Format(key string, c *model.Customer) string {
	f, ok := Formatters[key]
	if !ok {
		return ""
	}
	return f(c)
}

// FullName formats first and last name
func FullName(c *model.Customer) string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// DateOfBirth formats ISO date as long english date, i.e. March 15, 1985
func DateOfBirth(c *model.Customer) string {
	t, err := time.Parse(isoDateLayout, c.DateOfBirth)
	if err != nil {
		return c.DateOfBirth
	}
	return t.Format(displayDateLayout)
}

// PrimaryPhone formats primary phone number
func PrimaryPhone(c *model.Customer) string {
	p, ok := c.PrimaryPhone()
	if !ok || p.Number == "" {
		return notAvailable
	}
	return p.Number
}

// PrimaryEmail formats primary email address
func PrimaryEmail(c *model.Customer) string {
	e, ok := c.PrimaryEmail()
	if !ok || e.Address == "" {
		return notAvailable
	}
	return e.Address
}
