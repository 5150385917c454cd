package searchcfg

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customer-search/internal/model"
)

func testCustomer() *model.Customer {
	return &model.Customer{
		ID:          "1",
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: "1985-03-15",
		Phones: []model.Phone{
			{ID: "p1", Type: model.PhoneTypeHome, Number: "555-0100", IsPrimary: false},
			{ID: "p2", Type: model.PhoneTypeMobile, Number: "555-0101", IsPrimary: true},
		},
		Emails: []model.Email{
			{ID: "e1", Type: model.EmailTypeWork, Address: "john@work.com", IsPrimary: false},
		},
	}
}

func TestFormatters(t *testing.T) {
	c := testCustomer()

	t.Log("full name joins first and last name")
	require.Equal(t, "John Doe", FullName(c))

	t.Log("date of birth rendered as long date")
	require.Equal(t, "March 15, 1985", DateOfBirth(c))

	t.Log("unparsable date of birth is shown as is")
	require.Equal(t, "15/03/1985", DateOfBirth(&model.Customer{DateOfBirth: "15/03/1985"}))

	t.Log("primary phone is picked among many")
	require.Equal(t, "555-0101", PrimaryPhone(c))

	t.Log("missing primary email is N/A")
	require.Equal(t, "N/A", PrimaryEmail(c))

	t.Log("unknown column produces empty cell")
	require.Equal(t, "", Format("unknown", c))
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, Validate(validator.New(), Default()), "default configuration must be valid")
}

func TestValidateRejectsColumnWithoutFormatter(t *testing.T) {
	cfg := Default()
	cfg.ResultFields = append(cfg.ResultFields, model.ResultFieldConfig{Key: "secret", Label: "Secret", RenderOrder: 5})

	err := Validate(validator.New(), cfg)
	require.Error(t, err, "column without formatter must be rejected")
}

func TestValidateRejectsSelectWithoutOptions(t *testing.T) {
	cfg := Default()
	cfg.Fields["maritalStatus"] = model.FieldConfig{Kind: model.FieldKindSelect, Label: "Marital Status", RenderOrder: 4}

	err := Validate(validator.New(), cfg)
	require.Error(t, err, "select field without options must be rejected")
}
