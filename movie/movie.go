package movie

import (
	"encoding/json"

	"moviefetch/errs"
)

// DefaultPage is used when a request leaves Page unset.
const DefaultPage = 1

var (
	ErrInvalidQuery = errs.Errorf(errs.EINVALID, "invalid search query")
	ErrInvalidPage  = errs.Errorf(errs.EINVALID, "page must be a positive integer")
	ErrEmptyPage    = errs.Errorf(errs.EINVALID, "movie page is empty")
)

// Request selects one page of either the popular list or a search.
type Request struct {
	Page  int
	Query string
}

// Normalize fills in the default page. The query is kept verbatim.
func (r Request) Normalize() Request {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
	return r
}

func (r Request) Validate() error {
	if r.Page < 1 {
		return ErrInvalidPage
	}
	return nil
}

// IsSearch reports whether the request targets the search endpoint.
// Any non-empty query counts, whitespace included.
func (r Request) IsSearch() bool {
	return r.Query != ""
}

// Page is a provider response body exactly as it was received.
type Page json.RawMessage

func (p Page) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return []byte(p), nil
}

func (p *Page) UnmarshalJSON(data []byte) error {
	*p = append((*p)[0:0], data...)
	return nil
}

// Decode unmarshals the page into v without touching the raw body.
func (p Page) Decode(v interface{}) error {
	if len(p) == 0 {
		return ErrEmptyPage
	}
	return json.Unmarshal(p, v)
}

// Listing is the typed view of a popular or search page.
func (p Page) Listing() (Listing, error) {
	var l Listing
	err := p.Decode(&l)
	return l, err
}

type Listing struct {
	Page         int       `json:"page"`
	TotalPages   int       `json:"total_pages"`
	TotalResults int       `json:"total_results"`
	Results      []Summary `json:"results"`
}

type Summary struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	OriginalLanguage string  `json:"original_language"`
}
