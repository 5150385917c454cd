package render

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customer-search/internal/model"
)

func testFields() model.SearchFieldsConfig {
	return model.SearchFieldsConfig{
		"maritalStatus": {
			Kind:        model.FieldKindSelect,
			Label:       "Marital Status",
			RenderOrder: 4,
			Options: []model.FieldOption{
				{Value: "Single", Label: "Single"},
				{Value: "Married", Label: "Married"},
			},
		},
		"dateOfBirth": {Kind: model.FieldKindDate, Label: "Date of Birth", RenderOrder: 3, Placeholder: "ignored"},
		"lastName":    {Kind: model.FieldKindInput, Label: "Last Name", Placeholder: "Enter last name", RenderOrder: 2, Required: true},
		"firstName":   {Kind: model.FieldKindInput, Label: "First Name", Placeholder: "Enter first name", RenderOrder: 1},
		"nickname":    {Kind: "slider", Label: "Nickname", RenderOrder: 5},
	}
}

func TestControlKindOf(t *testing.T) {
	require.Equal(t, TextInput, ControlKindOf(model.FieldKindInput))
	require.Equal(t, DateInput, ControlKindOf(model.FieldKindDate))
	require.Equal(t, SelectInput, ControlKindOf(model.FieldKindSelect))
	require.Equal(t, TextInput, ControlKindOf("unknown"), "unknown kind must fall back to text")
}

func TestFormControlsOrderedByRenderOrder(t *testing.T) {
	view := Form(testFields(), model.SearchCriteria{"maritalStatus": "Married", "firstName": "Jo"}, false)

	keys := make([]string, 0, len(view.Controls))
	for _, c := range view.Controls {
		keys = append(keys, c.Key)
	}
	require.Equal(t, []string{"firstName", "lastName", "dateOfBirth", "maritalStatus", "nickname"}, keys)

	t.Log("entered values are carried into controls")
	require.Equal(t, "Jo", view.Controls[0].Value)
	require.True(t, view.Controls[1].Required)
	require.Equal(t, "Enter last name", view.Controls[1].Placeholder)

	t.Log("date picker has no placeholder")
	require.True(t, view.Controls[2].IsDate())
	require.Empty(t, view.Controls[2].Placeholder)

	t.Log("dropdown has blank option prepended and entered value selected")
	sel := view.Controls[3]
	require.True(t, sel.IsSelect())
	require.Equal(t, []Option{
		{Value: "", Label: "Select...", Selected: false},
		{Value: "Single", Label: "Single", Selected: false},
		{Value: "Married", Label: "Married", Selected: true},
	}, sel.Options)

	t.Log("unknown kind is rendered as text box")
	require.True(t, view.Controls[4].IsText())
}

func TestFormButtons(t *testing.T) {
	t.Log("clear is disabled for blank form when idle")
	{
		view := Form(testFields(), model.SearchCriteria{"firstName": "  "}, false)
		require.True(t, view.ClearDisabled)
		require.False(t, view.SubmitDisabled)
		require.Equal(t, "Search", view.SubmitLabel)
	}

	t.Log("clear is enabled once something is entered")
	{
		view := Form(testFields(), model.SearchCriteria{"lastName": "Doe"}, false)
		require.False(t, view.ClearDisabled)
	}

	t.Log("clear is enabled and submit disabled while searching")
	{
		view := Form(testFields(), nil, true)
		require.False(t, view.ClearDisabled)
		require.True(t, view.SubmitDisabled)
		require.Equal(t, "Searching...", view.SubmitLabel)
	}
}

func TestCriteriaTakesConfiguredFieldsOnly(t *testing.T) {
	values := url.Values{
		"firstName": {"John"},
		"lastName":  {""},
		"injected":  {"value"},
	}

	criteria := Criteria(testFields(), values)
	require.Equal(t, model.SearchCriteria{"firstName": "John"}, criteria)
}
