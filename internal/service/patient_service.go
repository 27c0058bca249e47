package service

import (
	"context"
	"fmt"
	"strings"

	"trauma-registry/internal/codes"
	"trauma-registry/internal/domain"
	"trauma-registry/internal/repository"
	"trauma-registry/internal/rut"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError reports a request rejected before any write happened.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// CreatePatientRequest carries the fields needed to register a patient.
// The record ID is assigned by the repository, never by the caller.
type CreatePatientRequest struct {
	Name             string
	Age              int
	RUT              string
	Dominance        domain.Dominance
	Injury           *domain.Injury
	SurgeryDelayDays int
	SurgeryDate      *domain.Date
	SurgeryType      string
}

// PatientService is the contract exposed to the UI layer.
type PatientService interface {
	CreatePatient(ctx context.Context, req CreatePatientRequest) (*domain.Patient, error)
	GetPatient(ctx context.Context, id string) (*domain.Patient, error)
	ListPatients(ctx context.Context) ([]*domain.Patient, error)
	ListActivePatients(ctx context.Context) ([]*domain.Patient, error)
	UpdatePatient(ctx context.Context, patient *domain.Patient) error
	DeletePatient(ctx context.Context, id string) error

	MarkRecovered(ctx context.Context, id string) error
	MarkActive(ctx context.Context, id string) error
	AddFollowUp(ctx context.Context, id string, fu domain.FollowUp) (*domain.Patient, error)

	SearchPatients(ctx context.Context, term string) ([]*domain.Patient, error)
	SearchByField(ctx context.Context, field SearchField, value string) ([]*domain.Patient, error)
}

type patientService struct {
	repo     repository.PatientsRepository
	registry *codes.Registry
	logger   *zap.Logger
}

// NewPatientService wires the service over a repository and the injury
// code registry.
func NewPatientService(repo repository.PatientsRepository, registry *codes.Registry, logger *zap.Logger) PatientService {
	return &patientService{repo: repo, registry: registry, logger: logger}
}

func validatePatientFields(name string, age int, rutValue string, dominance domain.Dominance, delayDays int) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if age < 0 || age > 120 {
		return &ValidationError{Field: "age", Message: "must be between 0 and 120"}
	}
	if !rut.Valid(rutValue) {
		return &ValidationError{Field: "rut", Message: "check digit does not match"}
	}
	if !dominance.Valid() {
		return &ValidationError{Field: "dominance", Message: "must be left, right or ambidextrous"}
	}
	if delayDays < 0 || delayDays > 365 {
		return &ValidationError{Field: "surgery_delay_days", Message: "must be between 0 and 365"}
	}
	return nil
}

func (s *patientService) CreatePatient(ctx context.Context, req CreatePatientRequest) (*domain.Patient, error) {
	if err := validatePatientFields(req.Name, req.Age, req.RUT, req.Dominance, req.SurgeryDelayDays); err != nil {
		return nil, err
	}

	// When the form only filled the official code, resolve the injury name
	// from the registry.
	injury := req.Injury
	if injury != nil && injury.Name == "" && injury.OfficialCode != "" {
		if name, ok := s.registry.Lookup(injury.OfficialCode); ok {
			withName := *injury
			withName.Name = name
			injury = &withName
		}
	}

	created, err := s.repo.Create(ctx, &domain.Patient{
		Name:             req.Name,
		Age:              req.Age,
		RUT:              rut.Clean(req.RUT),
		Dominance:        req.Dominance,
		Injury:           injury,
		SurgeryDelayDays: req.SurgeryDelayDays,
		SurgeryDate:      req.SurgeryDate,
		SurgeryType:      req.SurgeryType,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("patient registered",
		zap.String("id", created.ID), zap.String("rut", rut.Format(created.RUT)))
	return created, nil
}

func (s *patientService) GetPatient(ctx context.Context, id string) (*domain.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *patientService) ListPatients(ctx context.Context) ([]*domain.Patient, error) {
	return s.repo.List(ctx)
}

func (s *patientService) ListActivePatients(ctx context.Context) ([]*domain.Patient, error) {
	return s.repo.ListActive(ctx)
}

func (s *patientService) UpdatePatient(ctx context.Context, patient *domain.Patient) error {
	if patient.ID == "" {
		return &ValidationError{Field: "id", Message: "must not be empty"}
	}
	if err := validatePatientFields(patient.Name, patient.Age, patient.RUT, patient.Dominance, patient.SurgeryDelayDays); err != nil {
		return err
	}
	p := *patient
	p.RUT = rut.Clean(p.RUT)
	return s.repo.Update(ctx, &p)
}

func (s *patientService) DeletePatient(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *patientService) setRecovered(ctx context.Context, id string, recovered bool) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		s.logger.Warn("recovery toggle on unknown patient", zap.String("id", id))
		return nil
	}
	p.Recovered = recovered
	return s.repo.Update(ctx, p)
}

func (s *patientService) MarkRecovered(ctx context.Context, id string) error {
	return s.setRecovered(ctx, id, true)
}

func (s *patientService) MarkActive(ctx context.Context, id string) error {
	return s.setRecovered(ctx, id, false)
}

// AddFollowUp appends a dated assessment to the patient record and
// persists it. The follow-up gets its own UUID.
func (s *patientService) AddFollowUp(ctx context.Context, id string, fu domain.FollowUp) (*domain.Patient, error) {
	if fu.EvaluationDate.IsZero() {
		return nil, &ValidationError{Field: "evaluation_date", Message: "must be set"}
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &ValidationError{Field: "id", Message: "no patient with id " + id}
	}
	fu.ID = uuid.NewString()
	p.FollowUps = append(p.FollowUps, fu)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
