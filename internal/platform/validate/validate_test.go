// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vubib/internal/platform/apperr"
	"github.com/taibuivan/vubib/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "solr-url", "http://localhost:8983/solr/biblio/update", false},
		{"empty_string", "solr-url", "", true},
		{"whitespace_only", "solr-url", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_HTTPURL checks the endpoint URL rule.
*/
func TestValidator_HTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"http", "http://localhost:8983/solr/biblio/update", true},
		{"https", "https://solr.example.org/solr/biblio/update", true},
		{"missing_scheme", "localhost:8983/solr", false},
		{"ftp", "ftp://example.org/update", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.HTTPURL("solr-url", tt.value)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain collects every failing rule in order.
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("kind", "comic", "folder", "agent", "work", "all").
		Min("limit", 0, 1).
		Custom("offset", true, "Required when limit is set")

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 3)
	assert.Equal(t, "kind", ae.Details[0].Field)
	assert.Equal(t, "limit", ae.Details[1].Field)
	assert.Equal(t, "offset", ae.Details[2].Field)
}
