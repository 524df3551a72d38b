// Package table holds the client-side state of the users table: the record
// set as last synchronized from the store, the active sort, and the current
// page. The record set is a cache; every mutation applies the server's
// confirmed record rather than the client's optimistic guess.
package table

import (
	"cmp"
	"iter"
	"slices"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
)

// SortKey selects the column the table is ordered by.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByRole      SortKey = "role"
	SortByCreatedAt SortKey = "createdAt"
)

// SortOrder is the direction of the active sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 5

// Controller owns the table state and derives the visible rows from it.
type Controller struct {
	records  []domain.User
	sortKey  SortKey
	order    SortOrder
	page     int
	pageSize int
}

// NewController creates a Controller showing the newest users first, on
// page one.
func NewController(pageSize int) *Controller {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Controller{
		sortKey:  SortByCreatedAt,
		order:    Descending,
		page:     1,
		pageSize: pageSize,
	}
}

// Reload replaces the cached record set with the store's authoritative one.
func (c *Controller) Reload(users []domain.User) {
	c.records = slices.Clone(users)
}

// SetSort switches the active sort column. Re-selecting the current column
// toggles the direction; a new column starts descending. The current page
// is deliberately left alone.
func (c *Controller) SetSort(key SortKey) {
	if key == c.sortKey {
		if c.order == Ascending {
			c.order = Descending
		} else {
			c.order = Ascending
		}
		return
	}
	c.sortKey = key
	c.order = Descending
}

// SetPage moves to a 1-based page. Pages beyond the available range are
// allowed; the view is simply empty there.
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.page = page
}

// Page returns the current 1-based page number.
func (c *Controller) Page() int {
	return c.page
}

// PageSize returns the fixed page size.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// Sort returns the active sort key and direction.
func (c *Controller) Sort() (SortKey, SortOrder) {
	return c.sortKey, c.order
}

// Len returns the number of cached records.
func (c *Controller) Len() int {
	return len(c.records)
}

// TotalPages returns the number of pages the current record set fills.
func (c *Controller) TotalPages() int {
	return (len(c.records) + c.pageSize - 1) / c.pageSize
}

// ApplyCreate appends a server-confirmed record to the set.
func (c *Controller) ApplyCreate(u domain.User) {
	c.records = append(c.records, u)
}

// ApplyUpdate merges the provided fields over the record with the given id.
// A missing id is a no-op.
func (c *Controller) ApplyUpdate(id string, patch domain.UserPatch) {
	for i := range c.records {
		if c.records[i].ID == id {
			patch.Apply(&c.records[i])
			return
		}
	}
}

// ApplyDelete removes the record with the given id. A missing id is a
// no-op.
func (c *Controller) ApplyDelete(id string) {
	c.records = slices.DeleteFunc(c.records, func(u domain.User) bool {
		return u.ID == id
	})
}

// View yields the rows of the current page: the record set stable-sorted
// by the active key and direction, then sliced to the page window. The
// sequence is finite and restartable, and is empty when the page lies
// beyond the available range.
func (c *Controller) View() iter.Seq[domain.User] {
	return func(yield func(domain.User) bool) {
		rows := slices.Clone(c.records)
		slices.SortStableFunc(rows, c.compare)

		lo := (c.page - 1) * c.pageSize
		if lo >= len(rows) {
			return
		}
		hi := min(lo+c.pageSize, len(rows))

		for _, u := range rows[lo:hi] {
			if !yield(u) {
				return
			}
		}
	}
}

// compare orders two records by the active sort key. Equal keys report 0
// so the stable sort keeps their original relative order, which keeps
// pagination deterministic across re-renders.
func (c *Controller) compare(a, b domain.User) int {
	var r int
	switch c.sortKey {
	case SortByName:
		r = cmp.Compare(a.Name, b.Name)
	case SortByRole:
		r = cmp.Compare(a.Role, b.Role)
	default:
		r = a.CreatedAt.Compare(b.CreatedAt)
	}
	if c.order == Descending {
		r = -r
	}
	return r
}
