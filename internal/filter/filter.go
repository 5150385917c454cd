// Package filter narrows customers list down to the ones satisfying search criteria.
package filter

import (
	"regexp"
	"strings"

	"github.com/umalmyha/customer-search/internal/model"
)

const dateOfBirthKey = "dateOfBirth"

// dayFirstDate matches DD-MM-YYYY
var dayFirstDate = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)

type accessor func(*model.Customer) string

// names are always matched, so empty name never contains non-blank criterion
var names = map[string]accessor{
	"firstName": func(c *model.Customer) string { return c.FirstName },
	"lastName":  func(c *model.Customer) string { return c.LastName },
}

// attributes are matched only when customer has a value for them.
// Keys missing here and in names (except dateOfBirth) never exclude customer.
var attributes = map[string]accessor{
	"id":            func(c *model.Customer) string { return c.ID },
	"maritalStatus": func(c *model.Customer) string { return string(c.MaritalStatus) },
	"secureId":      func(c *model.Customer) string { return c.SecureID },
}

// IsKnownKey reports whether criterion key constrains customers at all
func IsKnownKey(key string) bool {
	if key == dateOfBirthKey {
		return true
	}
	if _, ok := names[key]; ok {
		return true
	}
	_, ok := attributes[key]
	return ok
}

// Customers returns customers satisfying every non-blank criterion, preserving input order.
// Input slice is never modified.
func Customers(customers []model.Customer, criteria model.SearchCriteria) []model.Customer {
	res := make([]model.Customer, 0, len(customers))
	for i := range customers {
		if Matches(&customers[i], criteria) {
			res = append(res, customers[i])
		}
	}
	return res
}

// Matches reports whether customer satisfies every non-blank criterion
func Matches(c *model.Customer, criteria model.SearchCriteria) bool {
	for key, value := range criteria {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if key == dateOfBirthKey {
			if !matchDate(c.DateOfBirth, value) {
				return false
			}
			continue
		}

		if get, ok := names[key]; ok {
			if !containsFold(get(c), value) {
				return false
			}
			continue
		}

		if get, ok := attributes[key]; ok {
			if attr := get(c); attr != "" && !containsFold(attr, value) {
				return false
			}
		}
	}
	return true
}

// matchDate compares stored ISO date with entered date either as is or converted from DD-MM-YYYY
func matchDate(stored, entered string) bool {
	if stored == entered {
		return true
	}

	m := dayFirstDate.FindStringSubmatch(entered)
	if m == nil {
		return false
	}

	day, month, year := m[1], m[2], m[3]
	return stored == year+"-"+month+"-"+day
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
