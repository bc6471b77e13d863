package page

// Notice styles, named after the alert classes the page uses.
const (
	StyleInfo      = "info"
	StylePrimary   = "primary"
	StyleSecondary = "secondary"
	StyleSuccess   = "success"
	StyleWarning   = "warning"
	StyleDanger    = "danger"
)

type Notice struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// Item is one rendered entry of the infraction list.
type Item struct {
	Tipo   string `json:"tipo"`
	Placa  string `json:"placa"`
	Data   string `json:"data"`
	Valor  string `json:"valor,omitempty"`
	Status string `json:"status"`
}

// Lines renders the entry the way the list shows it. The valor line is
// only present when the infraction carries a value.
func (i Item) Lines() []string {
	lines := []string{
		i.Tipo + " — " + i.Placa,
		i.Data,
	}
	if i.Valor != "" {
		lines = append(lines, i.Valor)
	}
	return append(lines, "Status: "+i.Status)
}

type Form struct {
	Placa string `json:"placa"`
	Valor string `json:"valor"`
	Tipo  string `json:"tipo"`
}

type Resposta struct {
	Visible bool   `json:"visible"`
	Body    string `json:"body"`
}

type Snapshot struct {
	Search   string   `json:"search_plate"`
	Items    []Item   `json:"infraction_list"`
	Total    int      `json:"total"`
	Notice   *Notice  `json:"alert_area,omitempty"`
	Form     Form     `json:"form"`
	Resposta Resposta `json:"resposta"`
}
