package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/consultorio/internal/httperr"
)

func TestParseType(t *testing.T) {
	tp, err := ParseType("Despesa")
	assert.NoError(t, err)
	assert.Equal(t, TypeDespesa, tp)

	_, err = ParseType("")
	assert.True(t, httperr.IsBusiness(err, "invalid_transaction_type"))

	_, err = ParseType("receita")
	assert.True(t, httperr.IsBusiness(err, "invalid_transaction_type"))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Sessão", "Consultoria", "Workshop", "Outros"}, Categories(TypeReceita))
	assert.Equal(t, []string{"Aluguel", "Materiais", "Marketing", "Transporte", "Outros"}, Categories(TypeDespesa))
	assert.Empty(t, Categories(Type("Outro")))

	cats := Categories(TypeReceita)
	cats[0] = "mutated"
	assert.Equal(t, "Sessão", Categories(TypeReceita)[0])
}
