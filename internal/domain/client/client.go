package client

import "github.com/BruksfildServices01/consultorio/internal/httperr"

type SessionType string

const (
	SessionIndividual SessionType = "Individual"
	SessionCasal      SessionType = "Casal"
	SessionFamilia    SessionType = "Família"
)

type PaymentStatus string

const (
	PaymentAtivo   PaymentStatus = "Ativo"
	PaymentInativo PaymentStatus = "Inativo"
)

func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(s) {
	case "":
		return SessionIndividual, nil
	case SessionIndividual, SessionCasal, SessionFamilia:
		return SessionType(s), nil
	}
	return "", httperr.ErrBusiness("invalid_session_type")
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case "":
		return PaymentAtivo, nil
	case PaymentAtivo, PaymentInativo:
		return PaymentStatus(s), nil
	}
	return "", httperr.ErrBusiness("invalid_payment_status")
}
