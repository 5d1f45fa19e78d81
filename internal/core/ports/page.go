package ports

// Page is an explicit-offset page request. From is a literal record offset
// into the result set (zero-based, not a page index) and Size is the page
// length. Stores that skip records use Offset; stores that only understand
// page numbers use Index, accepting that the two disagree when From is not a
// multiple of Size — the literal offset takes precedence wherever both are
// supported.
type Page struct {
	From int
	Size int
}

// Offset is the number of records to skip.
func (p Page) Offset() int { return p.From }

// Index is the derived zero-based page number (From / Size).
func (p Page) Index() int {
	if p.Size <= 0 {
		return 0
	}
	return p.From / p.Size
}

// Limit is the maximum number of records to return.
func (p Page) Limit() int { return p.Size }
