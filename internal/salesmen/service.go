package salesmen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ordertrack/ordertrack/internal/platform/httpx"
)

// Service manages the salesman-to-region mapping used for record region
// inference and report grouping.
type Service struct {
	repo     Repository
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

func (s *Service) List(ctx context.Context) ([]Salesman, error) {
	return s.repo.List(ctx)
}

// Upsert adds the salesman or reassigns the region of an existing one.
func (s *Service) Upsert(ctx context.Context, sm Salesman) (Salesman, error) {
	sm.Name = strings.TrimSpace(sm.Name)
	if sm.Region == "" {
		sm.Region = RegionUnassigned
	}
	if err := s.check(sm); err != nil {
		return Salesman{}, err
	}
	if err := s.repo.Upsert(ctx, sm); err != nil {
		return Salesman{}, err
	}
	return sm, nil
}

// BulkSet replaces the whole mapping with the submitted list.
func (s *Service) BulkSet(ctx context.Context, items []Salesman) ([]Salesman, error) {
	cleaned := make([]Salesman, 0, len(items))
	for _, sm := range items {
		sm.Name = strings.TrimSpace(sm.Name)
		if sm.Region == "" {
			sm.Region = RegionUnassigned
		}
		if err := s.check(sm); err != nil {
			return nil, err
		}
		cleaned = append(cleaned, sm)
	}
	if err := s.repo.ReplaceAll(ctx, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}

// RegionFor resolves the region of a salesman, case-insensitively.
// Unknown names map to Unassigned.
func (s *Service) RegionFor(ctx context.Context, name string) (string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	for _, sm := range items {
		if strings.EqualFold(strings.TrimSpace(sm.Name), name) {
			if sm.Region == "" {
				return string(RegionUnassigned), nil
			}
			return string(sm.Region), nil
		}
	}
	return string(RegionUnassigned), nil
}

func (s *Service) check(sm Salesman) error {
	if err := s.validate.Struct(sm); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("field %s is missing or invalid: %w", fieldErrs[0].Field(), httpx.ErrValidation)
		}
		return fmt.Errorf("%v: %w", err, httpx.ErrValidation)
	}
	if !sm.Region.Valid() {
		return fmt.Errorf("unknown region %q: %w", sm.Region, httpx.ErrValidation)
	}
	return nil
}
