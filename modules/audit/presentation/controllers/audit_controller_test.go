package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindParamsFromQuery_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/police/api/audit", nil)

	params, err := findParamsFromQuery(r)
	require.NoError(t, err)
	assert.Empty(t, params.Action)
	assert.Zero(t, params.ComplaintID)
	assert.Zero(t, params.Limit)
	assert.Zero(t, params.Offset)
}

func TestFindParamsFromQuery_CapsLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/police/api/audit?limit=1000", nil)

	params, err := findParamsFromQuery(r)
	require.NoError(t, err)
	assert.Equal(t, maxPageSize, params.Limit)
}

func TestFindParamsFromQuery_Filters(t *testing.T) {
	r := httptest.NewRequest("GET", "/police/api/audit?action=complaint.assigned&complaint_id=7&offset=20", nil)

	params, err := findParamsFromQuery(r)
	require.NoError(t, err)
	assert.Equal(t, "complaint.assigned", params.Action)
	assert.Equal(t, int64(7), params.ComplaintID)
	assert.Equal(t, 20, params.Offset)
}

func TestFindParamsFromQuery_Invalid(t *testing.T) {
	for _, query := range []string{"complaint_id=abc", "complaint_id=-1", "limit=0", "offset=-5"} {
		r := httptest.NewRequest("GET", "/police/api/audit?"+query, nil)
		_, err := findParamsFromQuery(r)
		assert.Error(t, err, query)
	}
}
