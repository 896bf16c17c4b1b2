package service

import (
	"sort"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
)

// FilterAll disables a criterion.
const FilterAll = "all"

// FilterCriteria narrows the roster. Each field is a concrete value or
// FilterAll. A record passes when every active criterion matches.
type FilterCriteria struct {
	State    string
	Position string
	Status   string
	SOACode  string
}

// SOAOption is one distinct (code, name) pair offered by the SOA filter.
type SOAOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// FilterStaff returns the records matching the criteria, preserving input
// order. The status criterion matches when any sub-record across insurance,
// licences, police checks or forms carries that status.
func FilterStaff(records []domain.StaffRecord, criteria FilterCriteria) []domain.StaffRecord {
	matched := make([]domain.StaffRecord, 0, len(records))
	for _, rec := range records {
		if criteria.State != FilterAll && criteria.State != "" && rec.State != criteria.State {
			continue
		}
		if criteria.Position != FilterAll && criteria.Position != "" && string(rec.Position) != criteria.Position {
			continue
		}
		if criteria.Status != FilterAll && criteria.Status != "" && !hasStatus(rec, domain.Status(criteria.Status)) {
			continue
		}
		if criteria.SOACode != FilterAll && criteria.SOACode != "" && !hasSOACode(rec, criteria.SOACode) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

// hasStatus scans all six status-bearing sub-record categories.
func hasStatus(rec domain.StaffRecord, status domain.Status) bool {
	if rec.Insurance.ProfessionalIndemnity.Status == status ||
		rec.Insurance.PublicLiability.Status == status ||
		rec.Insurance.WorkCover.Status == status {
		return true
	}
	for _, dl := range rec.DriverLicence {
		if dl.Status == status {
			return true
		}
	}
	for _, hrw := range rec.HRWLicence {
		if hrw.Status == status {
			return true
		}
	}
	for _, card := range rec.CardLicences {
		if card.Status == status {
			return true
		}
	}
	for _, pc := range rec.PoliceCheck {
		if pc.Status == status {
			return true
		}
	}
	for _, form := range rec.Forms {
		if form.Status == status {
			return true
		}
	}
	return false
}

func hasSOACode(rec domain.StaffRecord, code string) bool {
	for _, soa := range rec.Qualifications.SOA {
		if soa.Code == code {
			return true
		}
	}
	return false
}

// DistinctSOAs collects the unique (code, name) pairs across every record's
// statements of attainment, skipping entries without a code, sorted
// ascending by code.
func DistinctSOAs(records []domain.StaffRecord) []SOAOption {
	seen := make(map[SOAOption]struct{})
	options := make([]SOAOption, 0)
	for _, rec := range records {
		for _, soa := range rec.Qualifications.SOA {
			if soa.Code == "" {
				continue
			}
			opt := SOAOption{Code: soa.Code, Name: soa.Name}
			if _, dup := seen[opt]; dup {
				continue
			}
			seen[opt] = struct{}{}
			options = append(options, opt)
		}
	}
	sort.Slice(options, func(i, j int) bool {
		if options[i].Code != options[j].Code {
			return options[i].Code < options[j].Code
		}
		return options[i].Name < options[j].Name
	})
	return options
}
