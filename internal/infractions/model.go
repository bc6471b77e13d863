package infractions

import "simai/internal/page"

const (
	TipoNaoEspecificado = "Não especificado"

	MsgSemInfracoes    = "Sem infrações encontradas"
	MsgErroCarregar    = "Erro ao carregar infrações"
	MsgNovaSimulada    = "🔥 Nova infração detectada (simulada)!"
	MsgErroSimular     = "Erro ao simular infração"
	MsgFalhaSimulada   = "⚠️ Falha simulada: "
	MsgApiIndisponivel = "API não disponível"
	MsgPreencha        = "Preencha placa e valor"
	MsgRegistrada      = "Infração registrada com sucesso"
	MsgErroRegistrar   = "Erro ao registrar"
	MsgErroComunicacao = "Erro de comunicação"
	formatoExibidas    = "%d infração(ões) exibida(s)"
	prefixoValor       = "Valor: R$ "
)

// Infraction is a record as served by GET /infractions. Valor keeps the raw
// decoded JSON value because the service sends either a number or a string.
type Infraction struct {
	Tipo   string `json:"tipo"`
	Placa  string `json:"placa"`
	Data   string `json:"data"`
	Valor  any    `json:"valor"`
	Status string `json:"status"`
}

type ListResponse struct {
	Infractions []Infraction `json:"infractions"`
}

// Request is the body of POST /nova_infracao. Field order is the wire order.
type Request struct {
	Placa string `json:"placa" validate:"required"`
	Valor string `json:"valor" validate:"required"`
	Tipo  string `json:"tipo"`
}

type RenderResult struct {
	Items  []page.Item
	Total  int
	Notice page.Notice
}

type SearchRequest struct {
	Placa string `json:"placa"`
}
