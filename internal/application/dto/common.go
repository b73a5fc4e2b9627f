package dto

// APIResponse es el sobre estándar de todas las respuestas HTTP.
// Count solo se incluye en listados; Error solo en fallos; Message en
// operaciones sin cuerpo de datos (ej. cambio de contraseña).
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKList construye una respuesta exitosa de listado con count.
func OKList(data any, count int) APIResponse {
	return APIResponse{Success: true, Data: data, Count: &count}
}

// OKMessage construye una respuesta exitosa solo con mensaje.
func OKMessage(msg string) APIResponse {
	return APIResponse{Success: true, Message: msg}
}

// Fail construye una respuesta de error.
func Fail(msg string) APIResponse {
	return APIResponse{Success: false, Error: msg}
}
