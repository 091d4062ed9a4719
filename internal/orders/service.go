package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ordertrack/ordertrack/internal/platform/httpx"
)

// RegionSource resolves a salesman name to the region recorded in the Data
// sheet.
type RegionSource interface {
	RegionFor(ctx context.Context, salesman string) (string, error)
}

// Service applies the business rules of the record store: field validation,
// CPI derivation and region inference on every write.
type Service struct {
	repo     Repository
	regions  RegionSource
	validate *validator.Validate
}

// NewService builds a Service instance.
func NewService(repo Repository, regions RegionSource) *Service {
	return &Service{
		repo:     repo,
		regions:  regions,
		validate: validator.New(),
	}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	if id == "" {
		return Record{}, fmt.Errorf("record id must be provided: %w", httpx.ErrValidation)
	}
	return s.repo.Get(ctx, id)
}

// Create validates the form, assigns a fresh id, derives CPI and region and
// appends the record.
func (s *Service) Create(ctx context.Context, form RecordForm) (Record, error) {
	if err := s.checkForm(form); err != nil {
		return Record{}, err
	}

	now := time.Now()
	rec := s.fromForm(ctx, form)
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Find returns the first record matching the lookup query.
func (s *Service) Find(ctx context.Context, q LookupQuery) (Record, error) {
	return s.repo.Find(ctx, q.SONo, q.CustomerPONo)
}

// Update rewrites the record in place. The id and creation timestamp are
// preserved; CPI and region are derived again from the submitted fields.
func (s *Service) Update(ctx context.Context, id string, form RecordForm) (Record, error) {
	if id == "" {
		return Record{}, fmt.Errorf("record id must be provided: %w", httpx.ErrValidation)
	}
	if err := s.checkForm(form); err != nil {
		return Record{}, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}

	rec := s.fromForm(ctx, form)
	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) checkForm(form RecordForm) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("field %s is missing or invalid: %w", fieldErrs[0].Field(), httpx.ErrValidation)
	}
	return fmt.Errorf("%v: %w", err, httpx.ErrValidation)
}

func (s *Service) fromForm(ctx context.Context, form RecordForm) Record {
	return Record{
		DateOfRequest:  parseDate(form.DateOfRequest),
		SalesMan:       form.SalesMan,
		Region:         s.regionFor(ctx, form.SalesMan),
		CustomerName:   form.CustomerName,
		CustomerPONo:   form.CustomerPONo,
		SalesforceRef:  form.SalesforceRef,
		SONo:           form.SONo,
		Amount:         form.Amount,
		TotalDiscount:  form.TotalDiscount,
		CPI:            deriveCPI(form.Amount, form.CPS),
		CPS:            form.CPS,
		Definition:     form.Definition,
		DateOfDelivery: parseOptionalDate(form.DateOfDelivery),
		DateOfInvoice:  parseOptionalDate(form.DateOfInvoice),
		Note:           form.Note,
	}
}

func (s *Service) regionFor(ctx context.Context, salesman string) string {
	region, err := s.regions.RegionFor(ctx, salesman)
	if err != nil {
		return "Unassigned"
	}
	return region
}

// deriveCPI applies the cost rule: CPI = Amount - CPS when a CPS share is
// present, otherwise the full amount counts as CPI.
func deriveCPI(amount, cps float64) float64 {
	if cps > 0 {
		return amount - cps
	}
	return amount
}
