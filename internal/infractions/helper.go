package infractions

import (
	"fmt"
	"strings"

	"simai/internal/page"
	"simai/validation"
)

// Render maps the records served by the API and the raw search input to the
// list the page shows: newest (last served) first, filtered by plate.
func Render(records []Infraction, search string) RenderResult {
	term := validation.UpperTrim(search)

	items := make([]page.Item, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if term != "" && !strings.Contains(validation.Upper(rec.Placa), term) {
			continue
		}
		items = append(items, toItem(rec))
	}

	return RenderResult{
		Items:  items,
		Total:  len(records),
		Notice: CountNotice(len(items)),
	}
}

func CountNotice(shown int) page.Notice {
	if shown == 0 {
		return page.Notice{Text: MsgSemInfracoes, Style: page.StyleSecondary}
	}
	return page.Notice{Text: fmt.Sprintf(formatoExibidas, shown), Style: page.StylePrimary}
}

// FormatValor returns the "Valor: R$ n.nn" line, or false when the record
// carries no value.
func FormatValor(valor any) (string, bool) {
	if !validation.Truthy(valor) {
		return "", false
	}
	return prefixoValor + validation.FormatFixed2(validation.ToNumber(valor)), true
}

func toItem(rec Infraction) page.Item {
	item := page.Item{
		Tipo:   rec.Tipo,
		Placa:  rec.Placa,
		Data:   rec.Data,
		Status: rec.Status,
	}
	if line, ok := FormatValor(rec.Valor); ok {
		item.Valor = line
	}
	return item
}

// normalizeForm applies the submission defaults: trimmed plate, value as
// typed, trimmed category falling back to TipoNaoEspecificado.
func normalizeForm(f page.Form) Request {
	tipo := strings.TrimSpace(f.Tipo)
	if tipo == "" {
		tipo = TipoNaoEspecificado
	}
	return Request{
		Placa: strings.TrimSpace(f.Placa),
		Valor: f.Valor,
		Tipo:  tipo,
	}
}
