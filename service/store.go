package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/samridhisinghh987188/saas-contract-dashboard/config"
	"github.com/samridhisinghh987188/saas-contract-dashboard/model"
	"gopkg.in/yaml.v3"
)

// ErrContractNotFound is returned when a contract id is unknown.
var ErrContractNotFound = errors.New("contract not found")

// ContractStore is a read-only in-memory store of mock contracts.
// Records are created at construction and never mutated, so concurrent
// reads need no locking.
type ContractStore struct {
	details map[string]*model.ContractDetail
	order   []string // insertion order of ids, drives List ordering
	delay   time.Duration
}

// NewContractStore builds a store from the given config. If a seed file
// is configured it replaces the built-in mock contracts.
func NewContractStore(cfg *config.StoreConfig) (*ContractStore, error) {
	details := defaultContracts()
	if cfg.SeedFile != "" {
		loaded, err := loadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		details = loaded
	}

	s := &ContractStore{
		details: make(map[string]*model.ContractDetail, len(details)),
		order:   make([]string, 0, len(details)),
		delay:   time.Duration(cfg.FetchDelayMs) * time.Millisecond,
	}
	for i := range details {
		d := &details[i]
		s.details[d.ID] = d
		s.order = append(s.order, d.ID)
	}

	slog.Info("contract store initialized", "contracts", len(s.order))
	return s, nil
}

// List returns all contract summaries in insertion order.
func (s *ContractStore) List(ctx context.Context) ([]model.Contract, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	result := make([]model.Contract, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.details[id].Contract)
	}
	return result, nil
}

// GetDetail returns the full record for the given id, or
// ErrContractNotFound.
func (s *ContractStore) GetDetail(ctx context.Context, id string) (*model.ContractDetail, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	detail, ok := s.details[id]
	if !ok {
		return nil, ErrContractNotFound
	}
	return detail, nil
}

// Count returns the number of contracts in the store.
func (s *ContractStore) Count() int {
	return len(s.order)
}

// simulateLatency reproduces the mock API's artificial response delay.
// It carries no semantic meaning and is skipped when delay is zero.
func (s *ContractStore) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func loadSeedFile(path string) ([]model.ContractDetail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var details []model.ContractDetail
	if err := yaml.Unmarshal(data, &details); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, errors.New("seed file contains no contracts")
	}
	return details, nil
}
