package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradient-edu/gradient-cli/internal/common"
)

func TestAPIError_Message(t *testing.T) {
	tests := []struct {
		name   string
		status int
		detail string
		want   string
	}{
		{
			name:   "plain string detail",
			status: 400,
			detail: `"Incorrect email or password"`,
			want:   "Incorrect email or password",
		},
		{
			name:   "validation error list",
			status: 422,
			detail: `[{"loc":["body","email"],"msg":"value is not a valid email address","type":"value_error.email"},{"loc":["body","password"],"msg":"field required","type":"value_error.missing"}]`,
			want:   "email: value is not a valid email address; password: field required",
		},
		{
			name:   "nested location uses most specific segment",
			status: 422,
			detail: `[{"loc":["body","feedback","score"],"msg":"not a number"}]`,
			want:   "score: not a number",
		},
		{
			name:   "object detail",
			status: 409,
			detail: `{"code":"duplicate","field":"email"}`,
			want:   "code: duplicate; field: email",
		},
		{
			name:   "unparseable detail returned verbatim",
			status: 500,
			detail: `12.5`,
			want:   "12.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &APIError{StatusCode: tt.status, Detail: json.RawMessage(tt.detail)}
			assert.Equal(t, tt.want, e.Message())
		})
	}
}

func TestAPIError_EmptyDetail(t *testing.T) {
	e := &APIError{StatusCode: 502}
	assert.Equal(t, "request failed with status 502", e.Message())
	assert.Equal(t, "api error (status 502): request failed with status 502", e.Error())
}

func TestNewAPIError_EnvelopeExtraction(t *testing.T) {
	e := newAPIError(401, []byte(`{"detail":"token expired"}`))
	assert.Equal(t, "token expired", e.Message())

	// body without the envelope becomes the detail wholesale
	e = newAPIError(503, []byte(`upstream timeout`))
	assert.Equal(t, "upstream timeout", e.Message())
}

func TestAPIError_UnauthorizedMatchesSentinel(t *testing.T) {
	err := newAPIError(http.StatusUnauthorized, []byte(`{"detail": "Could not validate credentials"}`))
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	err = newAPIError(http.StatusNotFound, []byte(`{"detail": "Course not found"}`))
	assert.NotErrorIs(t, err, common.ErrUnauthorized)
}
