package repository

import (
	"fmt"
	"strings"
)

// Predicate is a WHERE fragment. Placeholders are numbered after the
// arguments already collected, so predicates can be nested freely.
type Predicate interface {
	appendTo(sb *strings.Builder, args []any) []any
}

// Where renders p, numbering placeholders from $1.
func Where(p Predicate) (string, []any) {
	var sb strings.Builder
	args := p.appendTo(&sb, nil)
	return sb.String(), args
}

type always struct{}

// Always matches every row.
func Always() Predicate { return always{} }

func (always) appendTo(sb *strings.Builder, args []any) []any {
	sb.WriteString("TRUE")
	return args
}

type isNull struct{ column string }

// IsNull matches rows where column is NULL.
func IsNull(column string) Predicate { return isNull{column: column} }

func (p isNull) appendTo(sb *strings.Builder, args []any) []any {
	sb.WriteString(p.column)
	sb.WriteString(" IS NULL")
	return args
}

type contains struct {
	column string
	term   string
}

// Contains matches rows where column contains term, ignoring case.
// LIKE wildcards in term match literally.
func Contains(column, term string) Predicate {
	return contains{column: column, term: term}
}

func (p contains) appendTo(sb *strings.Builder, args []any) []any {
	args = append(args, "%"+escapeLike(p.term)+"%")
	fmt.Fprintf(sb, "%s ILIKE $%d", p.column, len(args))
	return args
}

type group struct {
	op    string
	parts []Predicate
}

// And matches rows matching every part. Always() parts are dropped.
func And(parts ...Predicate) Predicate { return newGroup("AND", parts) }

// Or matches rows matching any part. An Always() part makes the whole
// group match everything.
func Or(parts ...Predicate) Predicate {
	for _, p := range parts {
		if _, ok := p.(always); ok {
			return Always()
		}
	}
	return newGroup("OR", parts)
}

func newGroup(op string, parts []Predicate) Predicate {
	kept := make([]Predicate, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		if _, ok := p.(always); ok {
			continue
		}
		kept = append(kept, p)
	}

	switch len(kept) {
	case 0:
		return Always()
	case 1:
		return kept[0]
	}
	return group{op: op, parts: kept}
}

func (g group) appendTo(sb *strings.Builder, args []any) []any {
	sb.WriteString("(")
	for i, p := range g.parts {
		if i > 0 {
			sb.WriteString(" " + g.op + " ")
		}
		args = p.appendTo(sb, args)
	}
	sb.WriteString(")")
	return args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// SearchUsers returns the user search filter for term: name, email or
// phone containing it. An empty term matches everyone.
func SearchUsers(term string) Predicate {
	term = strings.TrimSpace(term)
	if term == "" {
		return Always()
	}
	return Or(
		Contains("name", term),
		Contains("email", term),
		Contains("phone", term),
	)
}
