package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usersByAncestorQuery struct {
	Type  string `query:"type" validate:"required,location_type"`
	Match string `query:"match" validate:"required"`
	By    string `query:"by" validate:"omitempty,match_field"`
}

type checkoutRequest struct {
	Role   string `json:"role" validate:"omitempty,role"`
	Status string `json:"status" validate:"omitempty,order_status"`
	Method string `json:"method" validate:"omitempty,payment_method"`
}

func TestCustomValidator_DomainTags(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&usersByAncestorQuery{Type: "DISTRICT", Match: "Gasabo", By: "name"}))
	require.NoError(t, v.Validate(&checkoutRequest{Role: "ADMIN", Status: "SHIPPED", Method: "MOBILE_MONEY"}))

	err := v.Validate(&checkoutRequest{Role: "ROOT", Status: "LOST", Method: "BARTER"})
	fields, ok := FieldErrors(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []FieldError{
		{Field: "role", Rule: "role"},
		{Field: "status", Rule: "order_status"},
		{Field: "method", Rule: "payment_method"},
	}, fields)
}

func TestCustomValidator_QueryTagNames(t *testing.T) {
	err := New().Validate(&usersByAncestorQuery{Type: "county", By: "email"})

	fields, ok := FieldErrors(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []FieldError{
		{Field: "type", Rule: "location_type"},
		{Field: "match", Rule: "required"},
		{Field: "by", Rule: "match_field"},
	}, fields)
}

func TestFieldErrors_OtherErrors(t *testing.T) {
	_, ok := FieldErrors(errors.New("boom"))

	assert.False(t, ok)
}
