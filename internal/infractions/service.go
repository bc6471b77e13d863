package infractions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"

	"simai/internal/page"
	"simai/pkg/simai"
	"simai/validation"
)

type InterfaceService interface {
	LoadInfractions(ctx context.Context)
	SimulateInfraction(ctx context.Context)
	SimulateFailure(ctx context.Context)
	Enviar(ctx context.Context)
}

type Service struct {
	InterfaceRepository InterfaceRepository
	Page                *page.Page
}

func NewInfractionsService(InterfaceRepository InterfaceRepository, p *page.Page) *Service {
	return &Service{InterfaceRepository, p}
}

// LoadInfractions refreshes the list. On failure the list is left as it was.
func (s *Service) LoadInfractions(ctx context.Context) {
	records, err := s.InterfaceRepository.List(ctx)
	if err != nil {
		log.Printf("[INFRACOES] erro ao carregar infrações: %v", err)
		s.Page.ShowNotice(page.Notice{Text: MsgErroCarregar, Style: page.StyleDanger})
		return
	}

	result := Render(records, s.Page.Search())
	s.Page.ReplaceList(result.Items, result.Total)
	s.Page.ShowNotice(result.Notice)
}

func (s *Service) SimulateInfraction(ctx context.Context) {
	if err := s.InterfaceRepository.SimulateNew(ctx); err != nil {
		log.Printf("[INFRACOES] erro ao simular infração: %v", err)
		s.Page.ShowNotice(page.Notice{Text: MsgErroSimular, Style: page.StyleDanger})
		return
	}

	s.Page.ShowNotice(page.Notice{Text: MsgNovaSimulada, Style: page.StyleWarning})
	s.LoadInfractions(ctx)
}

func (s *Service) SimulateFailure(ctx context.Context) {
	err := s.InterfaceRepository.SimulateFailure(ctx)
	if err == nil {
		return
	}

	log.Printf("[INFRACOES] falha simulada: %v", err)
	msg := err.Error()
	if errors.Is(err, simai.ErrStatus) {
		msg = MsgApiIndisponivel
	}
	s.Page.ShowNotice(page.Notice{Text: MsgFalhaSimulada + msg, Style: page.StyleDanger})
}

// Enviar submits the form currently on the page.
func (s *Service) Enviar(ctx context.Context) {
	req := normalizeForm(s.Page.Form())
	if err := validation.Validate(req); err != nil {
		log.Printf("[INFRACOES] formulário incompleto: %v", validation.MissingFields(err))
		s.Page.ShowNotice(page.Notice{Text: MsgPreencha, Style: page.StyleWarning})
		return
	}

	resp, err := s.InterfaceRepository.Create(ctx, req)
	if err != nil {
		log.Printf("[INFRACOES] erro ao registrar infração: %v", err)
		s.Page.ShowNotice(page.Notice{Text: MsgErroComunicacao, Style: page.StyleDanger})
		return
	}

	pretty, err := indentJSON(resp.Body)
	if err != nil {
		log.Printf("[INFRACOES] resposta inválida de %s: %v", pathNovaInfracao, err)
		s.Page.ShowNotice(page.Notice{Text: MsgErroComunicacao, Style: page.StyleDanger})
		return
	}
	s.Page.ShowResposta(pretty)

	if resp.OK() {
		s.Page.ShowNotice(page.Notice{Text: MsgRegistrada, Style: page.StyleSuccess})
		s.LoadInfractions(ctx)
		return
	}

	msg, ok := erroMessage(resp.Body)
	if !ok {
		log.Printf("[INFRACOES] resposta de erro sem corpo de %s", pathNovaInfracao)
		msg = MsgErroComunicacao
	}
	s.Page.ShowNotice(page.Notice{Text: msg, Style: page.StyleDanger})
}

func indentJSON(body []byte) (string, error) {
	body = bytes.TrimSpace(body)
	if !json.Valid(body) {
		return "", errors.New("corpo não é JSON")
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// erroMessage picks the server supplied erro field, falling back to a
// generic message. A null body has no fields to read and reports false.
func erroMessage(body []byte) (string, bool) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		return "", false
	}
	obj, isObject := data.(map[string]any)
	if !isObject || !validation.Truthy(obj["erro"]) {
		return MsgErroRegistrar, true
	}
	return validation.ToString(obj["erro"]), true
}
