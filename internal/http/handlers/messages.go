package handlers

import (
	"net/http"

	"certificates/internal/middleware"
)

const (
	msgInvalidData    = "invalid_data"
	msgInvalidPayload = "invalid_payload"
	msgNotFound       = "not_found"
	msgInternal       = "internal"
)

var messages = map[string]map[string]string{
	middleware.LocaleES: {
		msgInvalidData:       "Datos inválidos",
		msgInvalidPayload:    "El cuerpo debe ser un objeto JSON",
		msgNotFound:          "Certificado no encontrado",
		msgInternal:          "Error interno del servidor",
		"field.required":     "Este campo es obligatorio",
		"field.invalid_type": "Este campo debe ser texto",
	},
	middleware.LocaleEN: {
		msgInvalidData:       "Invalid data",
		msgInvalidPayload:    "Request body must be a JSON object",
		msgNotFound:          "Certificate not found",
		msgInternal:          "Internal server error",
		"field.required":     "This field is required",
		"field.invalid_type": "This field must be a string",
	},
}

func message(r *http.Request, key string) string {
	locale := middleware.LocaleFromContext(r.Context())
	if m, ok := messages[locale][key]; ok {
		return m
	}
	if m, ok := messages[middleware.LocaleEN][key]; ok {
		return m
	}
	return key
}
