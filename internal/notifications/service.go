package notifications

import (
	"context"
	"log"
	"sync"

	"simai/pkg/metrics"
)

type InterfaceService interface {
	CheckNotifications(ctx context.Context)
	LastCheck() float64
	Reset()
}

// Service polls for notifications newer than its watermark (lastCheck).
type Service struct {
	InterfaceRepository InterfaceRepository
	Alerter             Alerter

	mu        sync.Mutex
	lastCheck float64
}

func NewNotificationsService(InterfaceRepository InterfaceRepository, alerter Alerter) *Service {
	return &Service{
		InterfaceRepository: InterfaceRepository,
		Alerter:             alerter,
	}
}

// CheckNotifications surfaces every notification in the order the server
// returned them. The watermark moves to each notification's own timestamp,
// so it ends at the last one processed, not the largest. Failures are
// logged and otherwise ignored.
func (s *Service) CheckNotifications(ctx context.Context) {
	since := s.LastCheck()

	list, err := s.InterfaceRepository.Check(ctx, since)
	if err != nil {
		log.Printf("[NOTIFICACOES] erro ao buscar notificações: %v", err)
		return
	}

	for _, n := range list {
		if err := s.Alerter.Alert(ctx, n); err != nil {
			log.Printf("[NOTIFICACOES] erro ao exibir alerta: %v", err)
		}
		metrics.NotificationsAlerted.Inc()
		s.setLastCheck(n.Timestamp)
	}
}

func (s *Service) LastCheck() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCheck
}

// Reset puts the watermark back to zero, as a page reload does.
func (s *Service) Reset() {
	s.setLastCheck(0)
}

func (s *Service) setLastCheck(ts float64) {
	s.mu.Lock()
	s.lastCheck = ts
	s.mu.Unlock()
	metrics.NotificationWatermark.Set(ts)
}
