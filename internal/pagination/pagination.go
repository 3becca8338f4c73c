package pagination

import "strconv"

// Valores padrão quando page/limit estão ausentes ou são inválidos
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params é o contrato page/limit já normalizado
type Params struct {
	Page  int
	Limit int
}

// Metadata é o bloco de paginação incluído no envelope de resposta
type Metadata struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
}

// Normalize converte os query params crus em Params válidos.
// Cada valor cai no padrão de forma independente: um page inválido
// não zera o limit e vice-versa. Total para qualquer entrada.
func Normalize(rawPage, rawLimit string) Params {
	return Params{
		Page:  parseOrDefault(rawPage, DefaultPage),
		Limit: parseOrDefault(rawLimit, DefaultLimit),
	}
}

// Offset calcula o deslocamento para a consulta paginada
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Metadata monta o bloco de paginação para totalItems itens
func (p Params) Metadata(totalItems int64) Metadata {
	return Metadata{
		CurrentPage: p.Page,
		TotalPages:  PageCount(totalItems, p.Limit),
		TotalItems:  totalItems,
		Limit:       p.Limit,
	}
}

// PageCount calcula o total de páginas; zero itens resulta em zero páginas
func PageCount(totalItems int64, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 0
	}
	pages := totalItems / int64(limit)
	if totalItems%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

func parseOrDefault(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
