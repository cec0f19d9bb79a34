package paging

const (
	DefaultSize = 10
	MaxSize     = 100
)

// Window is a normalized zero-indexed page request.
type Window struct {
	Page int
	Size int
}

// NewWindow clamps raw page/size inputs: negative pages become 0, a
// non-positive size falls back to defaultSize (or DefaultSize when that is
// not positive either), and size is capped at MaxSize.
func NewWindow(page, size, defaultSize int) Window {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultSize
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Window{Page: page, Size: size}
}

func (w Window) Limit() int {
	return w.Size
}

func (w Window) Offset() int {
	return w.Page * w.Size
}

// Page is the uniform envelope every paginated listing returns.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewPage wraps one page of content. totalPages = ceil(total/size); last is
// true on the final zero-indexed page, and on an empty first page.
func NewPage[T any](content []T, w Window, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if w.Size > 0 {
		totalPages = int((total + int64(w.Size) - 1) / int64(w.Size))
	}

	last := w.Page >= totalPages-1
	return Page[T]{
		Content:       content,
		PageNumber:    w.Page,
		PageSize:      w.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          last,
	}
}
