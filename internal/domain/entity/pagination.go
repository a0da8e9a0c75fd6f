package entity

// Pagination параметры страницы; нулевые значения дают пустую страницу
type Pagination struct {
	PageSize int
	Offset   int
}

// Page страница результатов и общее число строк независимо от границ страницы
type Page[T any] struct {
	Items []*T
	Count int64
}
