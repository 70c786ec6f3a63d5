package session

import "github.com/BruksfildServices01/consultorio/internal/httperr"

// ===============================
// Session Status
// ===============================

type Status string

const (
	StatusAgendada  Status = "Agendada"
	StatusRealizada Status = "Realizada"
	StatusCancelada Status = "Cancelada"
	StatusFaltou    Status = "Faltou"
)

// ===============================
// Payment Status
// ===============================

type PaymentStatus string

const (
	PaymentPendente PaymentStatus = "Pendente"
	PaymentPago     PaymentStatus = "Pago"
	PaymentAtrasado PaymentStatus = "Atrasado"
)

const DefaultDurationMinutes = 50

func InitialStatus() Status {
	return StatusAgendada
}

// ParseStatus aceita vazio como o status inicial de uma sessão nova.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "":
		return InitialStatus(), nil
	case StatusAgendada, StatusRealizada, StatusCancelada, StatusFaltou:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case "":
		return PaymentPendente, nil
	case PaymentPendente, PaymentPago, PaymentAtrasado:
		return PaymentStatus(s), nil
	}
	return "", httperr.ErrBusiness("invalid_payment_status")
}
