package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
)

// writeBusiness responde erros de regra de negócio. Devolve false quando
// err não é um deles, para o chamador tratar como erro interno.
func writeBusiness(c *gin.Context, err error) bool {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		return false
	}

	httperr.Write(c, be.Status(), be.Code, be.Message())
	return true
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

// checkAmount recusa valores negativos e com mais de duas casas decimais.
func checkAmount(c *gin.Context, v decimal.Decimal) bool {
	if v.IsNegative() {
		httperr.BadRequest(c, "negative_amount", "O valor não pode ser negativo.")
		return false
	}
	if !v.Equal(v.Round(2)) {
		httperr.BadRequest(c, "invalid_amount", "Use no máximo duas casas decimais.")
		return false
	}
	return true
}
