package render

import (
	"strconv"

	"github.com/zoobzio/sqlbuild/internal/types"
)

// Args accumulates bound values while a statement is rendered and hands
// out the matching placeholder. One Args is shared by a statement and all
// of its subqueries so numbering stays consistent left to right.
type Args struct {
	values types.Values
	style  PlaceholderStyle
}

// NewArgs creates an accumulator for the given placeholder style.
func NewArgs(style PlaceholderStyle) *Args {
	return &Args{style: style}
}

// Add records v and returns its placeholder.
func (a *Args) Add(v types.Value) string {
	a.values = append(a.values, v)
	if a.style == PlaceholderDollar {
		return "$" + strconv.Itoa(len(a.values))
	}
	return "?"
}

// Values returns the recorded values in placeholder order.
func (a *Args) Values() types.Values {
	return a.values
}
