package response

// ErrorResponse представляет ответ с ошибкой API
type ErrorResponse struct {
	// Код ошибки для программной обработки
	// example: SCHOOL_NOT_FOUND
	Code string `json:"code"`

	// Человекочитаемое сообщение об ошибке
	// example: Школа не найдена
	Message string `json:"message"`

	// Дополнительные детали об ошибке (опционально)
	// example: school not found: "lorgues"
	Details string `json:"details,omitempty"`
}

// StatusResponse: ответ проверки живости сервиса
type StatusResponse struct {
	Status string `json:"status" example:"OK"`
}

// TokenResponse представляет ответ с токеном администратора
type TokenResponse struct {
	// JWT токен для доступа к /admin
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`
}
