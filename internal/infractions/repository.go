package infractions

import (
	"context"
	"encoding/json"
	"fmt"

	"simai/pkg/simai"
)

const (
	pathInfractions     = "/infractions"
	pathSimulateNew     = "/simulate/new_infraction"
	pathSimulateFailure = "/simulate/api_failure"
	pathNovaInfracao    = "/nova_infracao"
)

type InterfaceRepository interface {
	List(ctx context.Context) ([]Infraction, error)
	SimulateNew(ctx context.Context) error
	SimulateFailure(ctx context.Context) error
	Create(ctx context.Context, arg Request) (*simai.Response, error)
}

type Repository struct {
	Client *simai.Client
}

func NewInfractionsRepository(client *simai.Client) *Repository {
	return &Repository{Client: client}
}

// List fetches every infraction. The HTTP status is not inspected: the body
// is used whenever it parses.
func (r *Repository) List(ctx context.Context) ([]Infraction, error) {
	resp, err := r.Client.Get(ctx, pathInfractions, nil)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := resp.Decode(&raw); err != nil {
		return nil, err
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil, nil
	}

	var list ListResponse
	if err := resp.Decode(&list); err != nil {
		return nil, err
	}
	return list.Infractions, nil
}

func (r *Repository) SimulateNew(ctx context.Context) error {
	resp, err := r.Client.Get(ctx, pathSimulateNew, nil)
	if err != nil {
		return err
	}
	var ignored json.RawMessage
	return resp.Decode(&ignored)
}

// SimulateFailure treats any non-2xx status as a failure.
func (r *Repository) SimulateFailure(ctx context.Context) error {
	resp, err := r.Client.Get(ctx, pathSimulateFailure, nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return fmt.Errorf("%w: %d", simai.ErrStatus, resp.StatusCode)
	}
	var ignored json.RawMessage
	return resp.Decode(&ignored)
}

// Create posts a new record and returns the raw response whatever its status.
func (r *Repository) Create(ctx context.Context, arg Request) (*simai.Response, error) {
	return r.Client.PostJSON(ctx, pathNovaInfracao, arg)
}
