package model

import "time"

// ShortKey короткий ключ, по которому разрешается оригинальный URL
type ShortKey string

func (k ShortKey) String() string {
	return string(k)
}

// URLRecord представляет сохранённую запись короткой ссылки
type URLRecord struct {
	ID          string
	OriginalURL string
	ShortKey    ShortKey
	CreatedAt   time.Time
}

// URLEntry представляет строку файла хранилища
type URLEntry struct {
	UUID        string    `json:"uuid"`
	ShortKey    string    `json:"short_key"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateURLRequest тело запроса POST /api/urls.
// Указатель отличает отсутствующее поле от пустой строки.
type CreateURLRequest struct {
	OriginalURL *string `json:"original_url" validate:"required"`
}

// URLInfoResponse ответ с информацией о короткой ссылке
type URLInfoResponse struct {
	OriginalURL string `json:"original_url"`
	ShortKey    string `json:"short_key"`
}

// NewURLInfoResponse собирает ответ из записи хранилища
func NewURLInfoResponse(rec URLRecord) URLInfoResponse {
	return URLInfoResponse{
		OriginalURL: rec.OriginalURL,
		ShortKey:    rec.ShortKey.String(),
	}
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
}
