package httperr

import (
	"errors"
	"net/http"
)

// mensagens exibidas ao usuário para cada código de regra de negócio
var businessMessages = map[string]string{
	"invalid_session_type":       "Tipo de sessão inválido.",
	"invalid_payment_status":     "Status de pagamento inválido.",
	"invalid_status":             "Status da sessão inválido.",
	"invalid_transaction_type":   "Tipo de transação inválido.",
	"invalid_period":             "Período inválido.",
	"invalid_year":               "Ano inválido.",
	"invalid_month":              "Mês inválido.",
	"missing_target":             "Informe o alvo da meta.",
	"invalid_goal_type":          "Tipo de meta inválido.",
	"invalid_image":              "Imagem inválida. Envie um arquivo PNG, JPEG, GIF ou WebP.",
	"weak_password":              "A senha deve ter pelo menos 6 caracteres.",
	"password_mismatch":          "As senhas não coincidem.",
	"invalid_email":              "E-mail inválido.",
	"invalid_email_domain":       "O domínio do e-mail informado não parece ser válido.",
	"email_already_registered":   "Este e-mail já está cadastrado.",
	"invalid_credentials":        "E-mail ou senha incorretos.",
	"email_not_confirmed":        "Confirme seu e-mail antes de entrar.",
	"invalid_confirmation_token": "Link de confirmação inválido ou expirado.",
}

// códigos que não respondem 400
var businessStatus = map[string]int{
	"invalid_credentials":      http.StatusUnauthorized,
	"email_not_confirmed":      http.StatusForbidden,
	"email_already_registered": http.StatusConflict,
}

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Message devolve o texto para o usuário; códigos sem tradução caem
// numa mensagem genérica.
func (e BusinessError) Message() string {
	if msg, ok := businessMessages[e.Code]; ok {
		return msg
	}
	return "Dados inválidos."
}

func (e BusinessError) Status() int {
	if status, ok := businessStatus[e.Code]; ok {
		return status
	}
	return http.StatusBadRequest
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
