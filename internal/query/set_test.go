package query

import "testing"

func TestSet_Empty(t *testing.T) {
	s := NewSet("j")
	if !s.Empty() {
		t.Fatalf("new set must be empty")
	}

	where, args, next := s.WhereSQL(1)
	if where != "" || args != nil || next != 1 {
		t.Fatalf("empty set must render no clause, got %q %v %d", where, args, next)
	}
}

func TestSet_WhereRenumbering(t *testing.T) {
	s := NewSet("j").
		Where("j.location = ?", "Pune").
		Where("j.min_experience >= ?", 3)

	where, args, next := s.WhereSQL(2)
	if where != "WHERE j.location = $2 AND j.min_experience >= $3" {
		t.Fatalf("unexpected clause: %q", where)
	}
	if len(args) != 2 || args[0] != "Pune" || args[1] != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
	if next != 4 {
		t.Fatalf("expected next position 4, got %d", next)
	}
}

func TestSet_WhereAny(t *testing.T) {
	s := NewSet("j").WhereAny(NewOrGroup().
		Or("LOWER(j.title) LIKE ?", "%go%").
		Or("LOWER(j.location) LIKE ?", "%go%"))

	where, args, _ := s.WhereSQL(1)
	if where != "WHERE (LOWER(j.title) LIKE $1 OR LOWER(j.location) LIKE $2)" {
		t.Fatalf("unexpected clause: %q", where)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSet_WhereAnyEmptyGroup(t *testing.T) {
	s := NewSet("j").WhereAny(NewOrGroup())
	if !s.Empty() {
		t.Fatalf("empty group must contribute nothing")
	}
}

func TestSet_JoinIdempotentPerKey(t *testing.T) {
	s := NewSet("p")
	first := s.Join("user", "u", "LEFT JOIN users u ON u.id = p.user_id")
	second := s.Join("user", "x", "LEFT JOIN users x ON x.id = p.user_id")

	if first != "u" || second != "u" {
		t.Fatalf("repeat registration must return the first alias, got %q %q", first, second)
	}
	if s.JoinCount() != 1 {
		t.Fatalf("expected 1 join, got %d", s.JoinCount())
	}
	if s.JoinSQL() != "LEFT JOIN users u ON u.id = p.user_id" {
		t.Fatalf("unexpected join sql: %q", s.JoinSQL())
	}
}

func TestSort_OrderSQL(t *testing.T) {
	got := Sort{Column: "j.created_at", Desc: true}.OrderSQL("j.id")
	if got != "ORDER BY j.created_at DESC, j.id DESC" {
		t.Fatalf("unexpected order clause: %q", got)
	}

	got = Sort{Column: "p.total_experience"}.OrderSQL("p.id")
	if got != "ORDER BY p.total_experience ASC, p.id DESC" {
		t.Fatalf("unexpected order clause: %q", got)
	}

	got = Sort{Column: "j.id", Desc: true}.OrderSQL("j.id")
	if got != "ORDER BY j.id DESC" {
		t.Fatalf("tie-break on the sort column must be dropped, got %q", got)
	}
}
