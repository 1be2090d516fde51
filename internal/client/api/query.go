package api

import (
	"net/url"
	"strconv"
	"strings"
)

// ListQuery is the pagination/search filter every list endpoint accepts.
type ListQuery struct {
	Page       int
	PerPage    int
	SearchText string
}

// Values encodes q as page, parPage and searchValue. Blank search text is
// "no filter" and is left out of the query.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("parPage", strconv.Itoa(q.PerPage))
	if s := strings.TrimSpace(q.SearchText); s != "" {
		v.Set("searchValue", s)
	}
	return v
}
