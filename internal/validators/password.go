package validators

import "github.com/BruksfildServices01/consultorio/internal/httperr"

const MinPasswordLength = 6

const (
	CodePasswordMismatch = "password_mismatch"
	CodeWeakPassword     = "weak_password"
)

// ValidateNewPassword aplica as mesmas regras do cadastro e da troca de senha.
func ValidateNewPassword(password, confirmation string) error {
	if password != confirmation {
		return httperr.ErrBusiness(CodePasswordMismatch)
	}
	return ValidatePasswordStrength(password)
}

func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return httperr.ErrBusiness(CodeWeakPassword)
	}
	return nil
}
