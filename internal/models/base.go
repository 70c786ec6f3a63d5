package models

import (
	"github.com/google/uuid"
)

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// StringPtr devolve nil para strings vazias, mantendo colunas opcionais como NULL.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
