package helpers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusperks/campusperks-api/libs/go/helpers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		query   string
		want    helpers.PaginationParams
		wantErr string
	}{
		{name: "defaults", query: "", want: helpers.PaginationParams{Limit: 10, Offset: 0, Page: 1}},
		{name: "page and limit", query: "?page=3&limit=20", want: helpers.PaginationParams{Limit: 20, Offset: 40, Page: 3}},
		{name: "offset derives page", query: "?offset=25&limit=10", want: helpers.PaginationParams{Limit: 10, Offset: 25, Page: 3}},
		{name: "limit clamped", query: "?limit=1000", want: helpers.PaginationParams{Limit: 100, Offset: 0, Page: 1}},
		{name: "zero limit", query: "?limit=0", wantErr: "limit must be at least 1, got 0"},
		{name: "non numeric limit", query: "?limit=abc", wantErr: "invalid limit parameter"},
		{name: "zero page", query: "?page=0", wantErr: "page must be at least 1, got 0"},
		{name: "negative offset", query: "?offset=-5", wantErr: "offset cannot be negative, got -5"},
		{name: "page and offset together", query: "?page=2&offset=10", wantErr: "page and offset cannot be combined"},
		{name: "page beyond int32 window", query: "?page=2147483647&limit=100", wantErr: "page 2147483647 is out of range"},
		{name: "limit overflows int32", query: "?limit=99999999999", wantErr: "invalid limit parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/discounts"+tt.query, nil)

			got, err := helpers.ParsePaginationParams(c)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
