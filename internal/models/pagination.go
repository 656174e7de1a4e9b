package models

// Направления сортировки для расширенного фильтра.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PageRequest - параметры постраничной выборки.
type PageRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Offset возвращает смещение для SQL-запроса.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination - метаданные страницы в ответе.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// IncidentPage - одна страница выдачи плюс метаданные.
type IncidentPage struct {
	Data       []*Incident `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// TotalPages считает ceil(total/limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
