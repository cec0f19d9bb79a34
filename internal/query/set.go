package query

import (
	"strconv"
	"strings"
)

// Set is an AND of zero or more optional conditions over one root entity.
// Builders append a condition only when the corresponding input was supplied,
// so an empty Set matches everything. A Set carries no state beyond the
// assembled fragments; execution belongs to the repositories.
type Set struct {
	root     string
	distinct bool
	joins    []join
	preds    []pred
}

type join struct {
	key    string
	alias  string
	clause string
}

type pred struct {
	expr string
	args []any
}

func NewSet(root string) *Set {
	return &Set{root: root}
}

func (s *Set) Root() string {
	return s.root
}

// Distinct marks the result set for query-level de-duplication. The executing
// repository emits SELECT DISTINCT and counts DISTINCT root ids.
func (s *Set) Distinct() *Set {
	s.distinct = true
	return s
}

func (s *Set) IsDistinct() bool {
	return s.distinct
}

// Join registers a join clause once per related-entity key and returns the
// alias to reference it by. Repeated registration under the same key returns
// the first alias, so every condition in the Set shares one join handle per
// related entity.
func (s *Set) Join(key, alias, clause string) string {
	for _, j := range s.joins {
		if j.key == key {
			return j.alias
		}
	}
	s.joins = append(s.joins, join{key: key, alias: alias, clause: clause})
	return alias
}

func (s *Set) JoinCount() int {
	return len(s.joins)
}

// Where appends one condition. Placeholders are written as ? and renumbered
// to $n when the clause is rendered.
func (s *Set) Where(expr string, args ...any) *Set {
	s.preds = append(s.preds, pred{expr: expr, args: args})
	return s
}

// WhereAny folds a disjunction into the Set as a single condition. An empty
// group contributes nothing.
func (s *Set) WhereAny(g *OrGroup) *Set {
	if g == nil || len(g.exprs) == 0 {
		return s
	}
	if len(g.exprs) == 1 {
		return s.Where(g.exprs[0], g.args...)
	}
	return s.Where("("+strings.Join(g.exprs, " OR ")+")", g.args...)
}

func (s *Set) Empty() bool {
	return len(s.preds) == 0
}

// JoinSQL renders the registered join clauses in registration order.
func (s *Set) JoinSQL() string {
	if len(s.joins) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s.joins))
	for _, j := range s.joins {
		parts = append(parts, j.clause)
	}
	return strings.Join(parts, " ")
}

// WhereSQL renders the conjunction with positional arguments numbered from
// start. It returns the clause (including the WHERE keyword, or empty when
// the Set is unconstrained), the argument list, and the next free position.
func (s *Set) WhereSQL(start int) (string, []any, int) {
	if len(s.preds) == 0 {
		return "", nil, start
	}

	exprs := make([]string, 0, len(s.preds))
	args := make([]any, 0)
	n := start
	for _, p := range s.preds {
		expr, next := renumber(p.expr, n)
		n = next
		exprs = append(exprs, expr)
		args = append(args, p.args...)
	}
	return "WHERE " + strings.Join(exprs, " AND "), args, n
}

func renumber(expr string, start int) (string, int) {
	var b strings.Builder
	b.Grow(len(expr) + 8)
	n := start
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' {
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			n++
			continue
		}
		b.WriteByte(expr[i])
	}
	return b.String(), n
}

// OrGroup collects alternatives for WhereAny.
type OrGroup struct {
	exprs []string
	args  []any
}

func NewOrGroup() *OrGroup {
	return &OrGroup{}
}

func (g *OrGroup) Or(expr string, args ...any) *OrGroup {
	g.exprs = append(g.exprs, expr)
	g.args = append(g.args, args...)
	return g
}

// Sort is a validated sort column plus direction. Columns reach here only
// through builder allow-lists, never straight from a caller.
type Sort struct {
	Column string
	Desc   bool
}

// OrderSQL renders the ORDER BY clause with a deterministic tie-break on
// tieBreak descending (normally the root id).
func (s Sort) OrderSQL(tieBreak string) string {
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	out := "ORDER BY " + s.Column + " " + dir
	if tieBreak != "" && tieBreak != s.Column {
		out += ", " + tieBreak + " DESC"
	}
	return out
}
