package movie_test

import (
	"encoding/json"
	"testing"

	"moviefetch/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        movie.Request
		wantPage   int
		wantSearch bool
		wantErr    error
	}{
		{name: "zero value is first popular page", req: movie.Request{}, wantPage: 1},
		{name: "explicit page is kept", req: movie.Request{Page: 2}, wantPage: 2},
		{name: "query selects search", req: movie.Request{Query: "batman"}, wantPage: 1, wantSearch: true},
		{name: "whitespace query still selects search", req: movie.Request{Query: " "}, wantPage: 1, wantSearch: true},
		{name: "negative page is invalid", req: movie.Request{Page: -3}, wantPage: -3, wantErr: movie.ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req.Normalize()

			assert.Equal(t, tt.wantPage, req.Page)
			assert.Equal(t, tt.wantSearch, req.IsSearch())
			assert.Equal(t, tt.wantErr, req.Validate())
		})
	}
}

func TestPage(t *testing.T) {
	t.Run("marshals raw body unchanged", func(t *testing.T) {
		raw := `{"page":1,"results":[],"unknown_field":{"kept":true}}`

		out, err := json.Marshal(struct {
			Result movie.Page `json:"result"`
		}{Result: movie.Page(raw)})

		require.NoError(t, err)
		assert.Equal(t, `{"result":`+raw+`}`, string(out))
	})

	t.Run("empty page marshals as null", func(t *testing.T) {
		out, err := json.Marshal(movie.Page(nil))

		require.NoError(t, err)
		assert.Equal(t, "null", string(out))
	})

	t.Run("unmarshal keeps bytes", func(t *testing.T) {
		var p movie.Page

		err := json.Unmarshal([]byte(`{"page":4}`), &p)

		require.NoError(t, err)
		assert.Equal(t, `{"page":4}`, string(p))
	})

	t.Run("listing decodes provider fields", func(t *testing.T) {
		p := movie.Page(`{"page":1,"total_pages":2,"total_results":21,"results":[{"id":268,"title":"Batman","release_date":"1989-06-23","original_language":"en"}]}`)

		l, err := p.Listing()

		require.NoError(t, err)
		assert.Equal(t, 1, l.Page)
		assert.Equal(t, 2, l.TotalPages)
		assert.Equal(t, 21, l.TotalResults)
		require.Len(t, l.Results, 1)
		assert.Equal(t, "Batman", l.Results[0].Title)
		assert.Equal(t, "1989-06-23", l.Results[0].ReleaseDate)
	})

	t.Run("decode of empty page fails", func(t *testing.T) {
		_, err := movie.Page(nil).Listing()

		assert.Equal(t, movie.ErrEmptyPage, err)
	})
}
