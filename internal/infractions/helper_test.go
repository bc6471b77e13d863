package infractions

import (
	"strings"
	"testing"

	"simai/internal/page"
)

func sample() []Infraction {
	return []Infraction{
		{Tipo: "Velocidade", Placa: "ABC1234", Data: "01/01/2025 10:00", Valor: float64(10), Status: "Pendente"},
		{Tipo: "Farol", Placa: "xyz9e87", Data: "02/01/2025 11:00", Status: "Pago"},
		{Tipo: "", Placa: "ABD0001", Data: "03/01/2025 12:00", Valor: "50", Status: ""},
	}
}

func plates(items []page.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Placa
	}
	return out
}

func TestRenderReversesServerOrder(t *testing.T) {
	got := plates(Render(sample(), "").Items)
	want := []string{"ABD0001", "xyz9e87", "ABC1234"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestRenderFiltersCaseInsensitive(t *testing.T) {
	cases := []struct {
		search string
		want   []string
	}{
		{"", []string{"ABD0001", "xyz9e87", "ABC1234"}},
		{"ab", []string{"ABD0001", "ABC1234"}},
		{"  XYZ ", []string{"xyz9e87"}},
		{"9E8", []string{"xyz9e87"}},
		{"zzz", []string{}},
	}
	for _, c := range cases {
		got := plates(Render(sample(), c.search).Items)
		if strings.Join(got, ",") != strings.Join(c.want, ",") {
			t.Errorf("search %q: got %v, want %v", c.search, got, c.want)
		}
	}
}

func TestRenderTotalCountsAllRecords(t *testing.T) {
	r := Render(sample(), "xyz")
	if r.Total != 3 {
		t.Fatalf("Total = %d, want 3", r.Total)
	}
}

func TestRenderValorLine(t *testing.T) {
	items := Render(sample(), "").Items
	byPlate := map[string]page.Item{}
	for _, it := range items {
		byPlate[it.Placa] = it
	}

	if got := byPlate["ABC1234"].Valor; got != "Valor: R$ 10.00" {
		t.Errorf("numeric valor = %q", got)
	}
	if got := byPlate["ABD0001"].Valor; got != "Valor: R$ 50.00" {
		t.Errorf("string valor = %q", got)
	}
	if got := byPlate["xyz9e87"].Valor; got != "" {
		t.Errorf("absent valor rendered as %q", got)
	}
}

func TestFormatValorFalsy(t *testing.T) {
	for _, v := range []any{nil, float64(0), "", false} {
		if line, ok := FormatValor(v); ok {
			t.Errorf("FormatValor(%#v) = %q, want no line", v, line)
		}
	}
}

func TestCountNotice(t *testing.T) {
	zero := CountNotice(0)
	if zero.Text != MsgSemInfracoes || zero.Style != page.StyleSecondary {
		t.Errorf("CountNotice(0) = %+v", zero)
	}
	three := CountNotice(3)
	if !strings.Contains(three.Text, "3") || three.Style != page.StylePrimary {
		t.Errorf("CountNotice(3) = %+v", three)
	}
	if three.Text != "3 infração(ões) exibida(s)" {
		t.Errorf("CountNotice(3).Text = %q", three.Text)
	}
}

func TestNormalizeForm(t *testing.T) {
	got := normalizeForm(page.Form{Placa: " ABC1234 ", Valor: "50", Tipo: "   "})
	want := Request{Placa: "ABC1234", Valor: "50", Tipo: TipoNaoEspecificado}
	if got != want {
		t.Fatalf("normalizeForm() = %+v, want %+v", got, want)
	}
}
