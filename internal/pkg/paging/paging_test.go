package paging

import "testing"

func TestNewWindow_Clamping(t *testing.T) {
	w := NewWindow(-2, 0, 20)
	if w.Page != 0 || w.Size != 20 {
		t.Fatalf("unexpected window: %+v", w)
	}

	w = NewWindow(3, 1000, 20)
	if w.Size != MaxSize {
		t.Fatalf("expected size capped at %d, got %d", MaxSize, w.Size)
	}

	w = NewWindow(0, 0, 0)
	if w.Size != DefaultSize {
		t.Fatalf("expected fallback to %d, got %d", DefaultSize, w.Size)
	}
}

func TestWindow_LimitOffset(t *testing.T) {
	w := NewWindow(2, 10, 10)
	if w.Limit() != 10 || w.Offset() != 20 {
		t.Fatalf("unexpected limit/offset: %d %d", w.Limit(), w.Offset())
	}
}

func TestNewPage_EnvelopeMath(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, Window{Page: 0, Size: 10}, 23)
	if p.TotalElements != 23 || p.TotalPages != 3 || p.Last {
		t.Fatalf("unexpected envelope: %+v", p)
	}

	p = NewPage([]int{4}, Window{Page: 2, Size: 10}, 23)
	if !p.Last {
		t.Fatalf("final window must report last")
	}

	p = NewPage([]int{}, Window{Page: 5, Size: 10}, 23)
	if !p.Last {
		t.Fatalf("windows past the end must report last")
	}
}

func TestNewPage_NilContent(t *testing.T) {
	p := NewPage[int](nil, Window{Page: 0, Size: 10}, 0)
	if p.Content == nil || len(p.Content) != 0 {
		t.Fatalf("nil content must serialize as an empty list, got %v", p.Content)
	}
	if p.TotalPages != 0 || !p.Last {
		t.Fatalf("unexpected empty envelope: %+v", p)
	}
}
