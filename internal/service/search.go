package service

import (
	"context"
	"fmt"
	"strings"

	"trauma-registry/internal/domain"
	"trauma-registry/internal/rut"
)

// SearchField selects the structured search criterion.
type SearchField string

const (
	SearchByName        SearchField = "name"
	SearchByRUT         SearchField = "rut"
	SearchByInjuryCode  SearchField = "injury-code"
	SearchByDiagnosis   SearchField = "diagnosis"
	SearchBySurgeryDate SearchField = "surgery-date"
)

// SearchPatients filters the full record set by a free-text term matched
// case-insensitively against name, RUT, injury name and injury code. RUTs
// are cleaned on both sides so punctuation never blocks a match. A blank
// term returns everything.
func (s *patientService) SearchPatients(ctx context.Context, term string) ([]*domain.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return patients, nil
	}

	lower := strings.ToLower(term)
	cleanTerm := strings.ToLower(rut.Clean(term))

	matched := make([]*domain.Patient, 0, len(patients))
	for _, p := range patients {
		switch {
		case strings.Contains(strings.ToLower(p.Name), lower):
		case cleanTerm != "" && strings.Contains(strings.ToLower(rut.Clean(p.RUT)), cleanTerm):
		case p.Injury != nil && strings.Contains(strings.ToLower(p.Injury.Name), lower):
		case p.Injury != nil && strings.Contains(strings.ToLower(p.Injury.OfficialCode), lower):
		default:
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// SearchByField filters by one structured criterion. String criteria use
// case-insensitive substring match; RUT and injury code are compared with
// punctuation and whitespace stripped; surgery date requires exact
// calendar-day equality with an ISO date value.
func (s *patientService) SearchByField(ctx context.Context, field SearchField, value string) ([]*domain.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)

	var wantDate domain.Date
	if field == SearchBySurgeryDate {
		wantDate, err = domain.ParseDate(value)
		if err != nil {
			return nil, &ValidationError{Field: "surgery-date", Message: "expected YYYY-MM-DD"}
		}
	}

	matched := make([]*domain.Patient, 0, len(patients))
	for _, p := range patients {
		var match bool
		switch field {
		case SearchByName:
			match = strings.Contains(strings.ToLower(p.Name), lower)
		case SearchByRUT:
			match = strings.Contains(strings.ToLower(rut.Clean(p.RUT)), strings.ToLower(rut.Clean(value)))
		case SearchByInjuryCode:
			if p.Injury != nil && p.Injury.OfficialCode != "" {
				code := strings.ToLower(strings.ReplaceAll(p.Injury.OfficialCode, " ", ""))
				want := strings.ToLower(strings.ReplaceAll(value, " ", ""))
				match = strings.Contains(code, want)
			}
		case SearchByDiagnosis:
			match = p.Injury != nil && strings.Contains(strings.ToLower(p.Injury.Diagnosis), lower)
		case SearchBySurgeryDate:
			match = p.SurgeryDate != nil && p.SurgeryDate.Equal(wantDate)
		default:
			return nil, fmt.Errorf("unknown search field %q", field)
		}
		if match {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
