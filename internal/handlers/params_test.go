package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tasktrack/internal/config"
)

func newListContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/tasks?"+rawQuery, nil)
	return c
}

func TestParseListQuery_Defaults(t *testing.T) {
	q := parseListQuery(newListContext(t, ""), config.ListingConfig{})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Empty(t, q.Name)
	assert.Empty(t, q.Status)
	assert.Empty(t, q.ID)
}

func TestParseListQuery_Values(t *testing.T) {
	q := parseListQuery(newListContext(t, "page=3&limit=25&name=deploy&status=PENDING&id=abc"), config.ListingConfig{})

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "deploy", q.Name)
	assert.Equal(t, "PENDING", q.Status)
	assert.Equal(t, "abc", q.ID)
}

func TestParseListQuery_BadValuesFallBack(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
	}{
		{"non-numeric", "page=abc&limit=xyz"},
		{"zero", "page=0&limit=0"},
		{"negative", "page=-2&limit=-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := parseListQuery(newListContext(t, tt.rawQuery), config.ListingConfig{})
			assert.Equal(t, 1, q.Page)
			assert.Equal(t, 10, q.Limit)
		})
	}
}

func TestParseListQuery_Caps(t *testing.T) {
	caps := config.ListingConfig{MaxLimit: 50, MaxPage: 100}

	q := parseListQuery(newListContext(t, "page=500&limit=5000"), caps)
	assert.Equal(t, 100, q.Page)
	assert.Equal(t, 50, q.Limit)

	// zero caps leave values unbounded
	q = parseListQuery(newListContext(t, "page=500&limit=5000"), config.ListingConfig{})
	assert.Equal(t, 500, q.Page)
	assert.Equal(t, 5000, q.Limit)
}
