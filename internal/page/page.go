package page

import (
	"sync"

	"simai/pkg/metrics"
)

// Page holds what the browser kept in the DOM: the search input, the
// infraction list, the alert area, the submission form and the raw
// response panel.
type Page struct {
	// deliver serializes updates end to end so listeners see snapshots in
	// the order the changes were made.
	deliver   sync.Mutex
	mu        sync.RWMutex
	search    string
	items     []Item
	total     int
	notice    *Notice
	form      Form
	resposta  Resposta
	listeners []func(Snapshot)
}

func New(search string) *Page {
	return &Page{search: search}
}

// Subscribe registers fn to be called with a fresh snapshot after every change.
func (p *Page) Subscribe(fn func(Snapshot)) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

func (p *Page) Search() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.search
}

func (p *Page) SetSearch(search string) {
	p.update(func() { p.search = search })
}

func (p *Page) Form() Form {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.form
}

func (p *Page) SetForm(f Form) {
	p.update(func() { p.form = f })
}

// ReplaceList swaps the whole list in one step; total is the number of
// records received before filtering.
func (p *Page) ReplaceList(items []Item, total int) {
	cp := make([]Item, len(items))
	copy(cp, items)
	p.update(func() {
		p.items = cp
		p.total = total
	})
	metrics.InfractionsShown.Set(float64(len(cp)))
}

// ShowNotice replaces the alert area content.
func (p *Page) ShowNotice(n Notice) {
	p.update(func() { p.notice = &n })
	metrics.NoticesTotal.WithLabelValues(n.Style).Inc()
}

// ShowResposta makes the response panel visible with body.
func (p *Page) ShowResposta(body string) {
	p.update(func() { p.resposta = Resposta{Visible: true, Body: body} })
}

func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

func (p *Page) snapshotLocked() Snapshot {
	s := Snapshot{
		Search:   p.search,
		Items:    make([]Item, len(p.items)),
		Total:    p.total,
		Form:     p.form,
		Resposta: p.resposta,
	}
	copy(s.Items, p.items)
	if p.notice != nil {
		n := *p.notice
		s.Notice = &n
	}
	return s
}

// update applies mutate and hands the resulting snapshot to every listener.
// Listeners must not call back into methods that change the page.
func (p *Page) update(mutate func()) {
	p.deliver.Lock()
	defer p.deliver.Unlock()

	p.mu.Lock()
	mutate()
	snap := p.snapshotLocked()
	listeners := make([]func(Snapshot), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
