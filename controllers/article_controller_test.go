package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseIDRejectsMalformedBeforeLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		raw    string
		wantID uint
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
		{"64febc0a9d3b4a0012345678", 0, false},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		id, ok := parseID(ctx, c.raw)
		assert.Equal(t, c.wantOK, ok, "raw %q", c.raw)
		assert.Equal(t, c.wantID, id, "raw %q", c.raw)
		if !c.wantOK {
			assert.Equal(t, http.StatusBadRequest, w.Code, "raw %q", c.raw)
			assert.Contains(t, w.Body.String(), "ID 非法", "raw %q", c.raw)
		}
	}
}
