package prestashop

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	extracted := false
	noExtract := func() (int, string, error) {
		extracted = true
		return 0, "", nil
	}

	t.Run("success statuses", func(t *testing.T) {
		assert.NoError(t, classify(http.StatusOK, noExtract))
		assert.NoError(t, classify(http.StatusCreated, noExtract))
	})

	t.Run("401 ignores the body", func(t *testing.T) {
		err := classify(http.StatusUnauthorized, noExtract)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnauthorized))

		var authErr *AuthenticationError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, "Unauthorized", authErr.Message)
		assert.False(t, extracted)
	})

	tests := []struct {
		status int
		label  string
	}{
		{http.StatusNoContent, "No content"},
		{http.StatusBadRequest, "Bad Request"},
		{http.StatusNotFound, "Not Found"},
		{http.StatusMethodNotAllowed, "Method Not Allowed"},
		{http.StatusInternalServerError, "Internal Server Error"},
		{http.StatusTeapot, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			err := classify(tt.status, staticExtractor(42, "remote says no"))

			var svcErr *ServiceError
			require.True(t, errors.As(err, &svcErr))
			assert.Equal(t, tt.status, svcErr.StatusCode)
			assert.Equal(t, tt.label, svcErr.Message)
			assert.Equal(t, 42, svcErr.Code)
			assert.Equal(t, "remote says no", svcErr.RemoteMessage)
			assert.Contains(t, svcErr.Error(), "[42] remote says no")
		})
	}

	t.Run("extraction failure is kept", func(t *testing.T) {
		err := classify(http.StatusInternalServerError, bodyExtractor(jsonWire{}, []byte("<html>oops</html>")))

		var svcErr *ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "Internal Server Error", svcErr.Message)

		var parseErr *ParsingError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, []byte("<html>oops</html>"), parseErr.Content)
	})
}

func TestExtractError(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		format   Format
		wantCode int
		wantMsg  string
		wantErr  bool
	}{
		{
			name:     "json",
			body:     `{"errors":[{"code":5,"message":"bad"}]}`,
			format:   FormatJSON,
			wantCode: 5,
			wantMsg:  "bad",
		},
		{
			name:     "json keeps the first entry",
			body:     `{"errors":[{"code":90,"message":"Invalid ID"},{"code":91,"message":"other"}]}`,
			format:   FormatJSON,
			wantCode: 90,
			wantMsg:  "Invalid ID",
		},
		{
			name:     "json string code",
			body:     `{"errors":[{"code":"5","message":"bad"}]}`,
			format:   FormatJSON,
			wantCode: 5,
			wantMsg:  "bad",
		},
		{
			name:    "json without code",
			body:    `{"errors":[{"message":"bad"}]}`,
			format:  FormatJSON,
			wantMsg: "bad",
		},
		{
			name:    "json fractional code",
			body:    `{"errors":[{"code":5.5,"message":"bad"}]}`,
			format:  FormatJSON,
			wantErr: true,
		},
		{
			name:    "json without errors",
			body:    `{"taxes":[]}`,
			format:  FormatJSON,
			wantErr: true,
		},
		{
			name:    "json garbage",
			body:    `not json`,
			format:  FormatJSON,
			wantErr: true,
		},
		{
			name: "xml",
			body: `<?xml version="1.0" encoding="UTF-8"?>
<prestashop><errors><error><code><![CDATA[5]]></code><message><![CDATA[bad]]></message></error></errors></prestashop>`,
			format:   FormatXML,
			wantCode: 5,
			wantMsg:  "bad",
		},
		{
			name:    "xml without errors",
			body:    `<prestashop><taxes/></prestashop>`,
			format:  FormatXML,
			wantErr: true,
		},
		{
			name:    "xml code not numeric",
			body:    `<prestashop><errors><error><code>five</code><message>bad</message></error></errors></prestashop>`,
			format:  FormatXML,
			wantErr: true,
		},
		{
			name:    "xml empty body",
			body:    ``,
			format:  FormatXML,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg, err := ExtractError([]byte(tt.body), tt.format)
			if tt.wantErr {
				var parseErr *ParsingError
				assert.True(t, errors.As(err, &parseErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
