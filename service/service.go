package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrDuplicateService  = errors.New("service already registered")
	ErrMissingDependency = errors.New("missing service dependency")
	ErrDependencyCycle   = errors.New("service dependency cycle")
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the terminal screen and the audio device
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire the resource, after every dependency has started
//  3. [runtime operation]
//  4. Stop() - release the resource, in reverse start order
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	Dependencies() []string

	Start() error

	// Stop must be idempotent
	Stop() error
}

// Hub starts registered services in dependency order and stops them in reverse
type Hub struct {
	logger   *zap.Logger
	services map[string]Service
	order    []string
	started  []Service
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		logger:   logger,
		services: make(map[string]Service),
	}
}

// Register adds a service; registration order breaks ties between independent services
func (h *Hub) Register(s Service) error {
	name := s.Name()
	if _, ok := h.services[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateService, name)
	}
	h.services[name] = s
	h.order = append(h.order, name)
	return nil
}

// Get returns a registered service by name
func (h *Hub) Get(name string) (Service, bool) {
	s, ok := h.services[name]
	return s, ok
}

// resolve returns services topologically sorted by their dependencies
func (h *Hub) resolve() ([]Service, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	sorted := make([]Service, 0, len(h.services))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return fmt.Errorf("%w: %s", ErrDependencyCycle, name)
		case done:
			return nil
		}
		s, ok := h.services[name]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingDependency, name)
		}
		state[name] = visiting
		for _, dep := range s.Dependencies() {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = done
		sorted = append(sorted, s)
		return nil
	}

	for _, name := range h.order {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return sorted, nil
}

// StartAll starts every service; on failure the already started ones are stopped
func (h *Hub) StartAll() error {
	sorted, err := h.resolve()
	if err != nil {
		return err
	}
	for _, s := range sorted {
		if err := s.Start(); err != nil {
			startErr := fmt.Errorf("start %s: %w", s.Name(), err)
			return errors.Join(startErr, h.StopAll())
		}
		h.started = append(h.started, s)
		h.logger.Debug("service started", zap.String("service", s.Name()))
	}
	return nil
}

// StopAll stops started services in reverse order, collecting every error
func (h *Hub) StopAll() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		s := h.started[i]
		if err := s.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", s.Name(), err))
		}
		h.logger.Debug("service stopped", zap.String("service", s.Name()))
	}
	h.started = nil
	return errors.Join(errs...)
}
