package urlparam_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wings/http/urlparam"
)

func TestQueryParam(t *testing.T) {
	tcs := []struct {
		name        string
		rawQuery    string
		param       string
		expected    string
		expectedErr error
	}{
		{"Found", "id=42&name=Alice", "id", "42", nil},
		{"Found-Other", "id=42&name=Alice", "name", "Alice", nil},
		{"Missing", "id=42&name=Alice", "missing", "", urlparam.ErrNotFound},
		{"Empty-Query", "", "id", "", urlparam.ErrNotFound},
		{"Empty-Value", "flag=", "flag", "", nil},
		{"Escaped", "q=hello%20world", "q", "hello world", nil},
		{"First-Value", "id=1&id=2", "id", "1", nil},
		{"Malformed", "id=42&bad=%zz", "id", "", urlparam.ErrMalformed},
		{"Semicolon", "id=42;name=Alice", "id", "", urlparam.ErrMalformed},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			q := urlparam.NewQuery(&url.URL{Path: "/", RawQuery: tc.rawQuery})

			// Act
			actual, err := q.Param(tc.param)

			// Assert
			require.Equal(t, tc.expected, actual)
			if tc.expectedErr == nil {
				require.Nil(t, err)
				return
			}

			require.ErrorIs(t, err, tc.expectedErr)

			var pe *urlparam.ParamError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.param, pe.Name)
		})
	}

	t.Run("Nil-URL", func(t *testing.T) {
		_, err := urlparam.NewQuery(nil).Param("id")
		require.ErrorIs(t, err, urlparam.ErrNotFound)
	})
}

func TestPathParam(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "https://example.com/users/7", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "7"})
	p := urlparam.NewPath(r)

	// Act
	actual, err := p.Param("id")

	// Assert
	require.Nil(t, err)
	require.Equal(t, "7", actual)

	// Act
	actual, err = p.Param("slug")

	// Assert
	require.ErrorIs(t, err, urlparam.ErrNotFound)
	require.Zero(t, actual)

	// Arrange + Act
	_, err = urlparam.NewPath(httptest.NewRequest(http.MethodGet, "https://example.com", nil)).Param("id")

	// Assert
	require.ErrorIs(t, err, urlparam.ErrNotFound)
}

func TestParamErrorMessage(t *testing.T) {
	err := &urlparam.ParamError{Name: "id", Err: urlparam.ErrNotFound}
	require.Equal(t, `url param "id": not found`, err.Error())
}
