package transaction

import "github.com/BruksfildServices01/consultorio/internal/httperr"

type Type string

const (
	TypeReceita Type = "Receita"
	TypeDespesa Type = "Despesa"
)

// categorias sugeridas no formulário, por tipo
var suggestedCategories = map[Type][]string{
	TypeReceita: {"Sessão", "Consultoria", "Workshop", "Outros"},
	TypeDespesa: {"Aluguel", "Materiais", "Marketing", "Transporte", "Outros"},
}

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeReceita, TypeDespesa:
		return Type(s), nil
	}
	return "", httperr.ErrBusiness("invalid_transaction_type")
}

// Categories devolve uma cópia da lista de sugestões do tipo.
func Categories(t Type) []string {
	src := suggestedCategories[t]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
