package api

// Post представляет запись удаленной ленты
type Post struct {
	ID       int64  `json:"id"`                 // числовой id, назначенный лентой
	UserID   int64  `json:"userId"`             // автор записи
	Title    string `json:"title"`              // текст цитаты
	Body     string `json:"body"`               // произвольное тело, "Category: <c>" для отправленных клиентом
	Category string `json:"category,omitempty"` // категория, если лента ее отдает
}

// CreatePostRequest представляет запрос на создание записи
type CreatePostRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int64  `json:"userId"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Posts   int    `json:"posts"`
}
