package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
	"github.com/atlas-rto/workforce-matrix/internal/events"
	"github.com/atlas-rto/workforce-matrix/internal/repository"
	apperrors "github.com/atlas-rto/workforce-matrix/pkg/util"
)

// RosterService owns the in-memory staff collection and every mutation
// entry point. All mutations persist the whole collection synchronously
// before returning; a failed persist is logged and the in-memory state
// stays authoritative.
type RosterService struct {
	mu         sync.Mutex
	records    []domain.StaffRecord
	repo       repository.RosterRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CreateStaffInput carries the add-staff form fields.
type CreateStaffInput struct {
	FirstName   string
	MiddleName  string
	Surname     string
	Position    domain.Position
	State       string
	TeamStatus  string
	DateOfBirth string
	Email       string
	Phone       string
	Address     string
	Suburb      string
	Postcode    string
}

// NewRosterService constructs the service. Call Load before serving.
func NewRosterService(repo repository.RosterRepository, dispatcher events.Dispatcher, logger *zap.Logger) *RosterService {
	return &RosterService{repo: repo, dispatcher: dispatcher, logger: logger}
}

// Load adopts the persisted roster, or installs and persists the built-in
// seed roster when nothing usable is stored.
func (s *RosterService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("loading roster failed, falling back to seed data", zap.Error(err))
	}
	if ok {
		s.records = records
		s.logger.Info("roster loaded", zap.Int("staff", len(records)))
		return nil
	}

	s.records = SeedRoster()
	s.logger.Info("no saved roster, seeded defaults", zap.Int("staff", len(s.records)))
	s.persistLocked(ctx)
	return nil
}

func requireLogin(actor *domain.User) error {
	if actor == nil {
		return apperrors.NewUnauthorized("login required")
	}
	return nil
}

func requireAdmin(actor *domain.User) error {
	if actor == nil || actor.Role != domain.RoleAdministrator {
		return apperrors.NewForbidden("administrator role required")
	}
	return nil
}

// persistLocked writes the collection through the repository. Failures are
// recoverable: the in-memory roster stays the source of truth and the
// operation that triggered the write still counts as succeeded.
func (s *RosterService) persistLocked(ctx context.Context) {
	if err := s.repo.Save(ctx, s.records); err != nil {
		s.logger.Warn("saving roster failed; changes kept in memory only", zap.Error(err))
	}
}

func (s *RosterService) publish(ctx context.Context, eventType events.EventType, atlasID, actor string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		AtlasID:   atlasID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

// List returns a deep snapshot of the full collection.
func (s *RosterService) List() []domain.StaffRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.records)
}

// GetByAtlasID looks up one record by its roster key.
func (s *RosterService) GetByAtlasID(atlasID string) (*domain.StaffRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.AtlasID == atlasID {
			cloned := cloneRecord(rec)
			return &cloned, nil
		}
	}
	return nil, apperrors.NewNotFound("staff record", map[string]any{"atlas_id": atlasID})
}

// Filtered returns the records matching the criteria in collection order.
func (s *RosterService) Filtered(criteria FilterCriteria) []domain.StaffRecord {
	return FilterStaff(s.List(), criteria)
}

// SOAOptions returns the distinct statement-of-attainment pairs on file.
func (s *RosterService) SOAOptions() []SOAOption {
	return DistinctSOAs(s.List())
}

// Create validates the input, assigns id and AtlasID and appends the new
// record. Administrator only.
func (s *RosterService) Create(ctx context.Context, actor *domain.User, input CreateStaffInput) (*domain.StaffRecord, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	firstName := sentenceCase(input.FirstName)
	surname := sentenceCase(input.Surname)
	middleName := ""
	if strings.TrimSpace(input.MiddleName) != "" {
		middleName = sentenceCase(input.MiddleName)
	}

	if firstName == "" || surname == "" || input.Position == "" || strings.TrimSpace(input.State) == "" {
		return nil, apperrors.NewValidationError("first name, surname, position and state are required", nil)
	}
	if !validNamePart(firstName) || !validNamePart(surname) {
		return nil, apperrors.NewValidationError("names can only contain letters, hyphens, and apostrophes", nil)
	}
	if middleName != "" && !validNamePart(middleName) {
		return nil, apperrors.NewValidationError("middle name can only contain letters, hyphens, and apostrophes", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	atlasID := generateAtlasID(s.records, firstName, surname, middleName, 0)
	if atlasID == "" {
		return nil, apperrors.NewValidationError("could not derive an ATLAS ID from the names entered", nil)
	}

	maxID := 0
	for _, rec := range s.records {
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}

	address := strings.TrimSpace(input.Address)
	if input.Suburb != "" || input.Postcode != "" {
		parts := make([]string, 0, 4)
		for _, p := range []string{address, strings.TrimSpace(input.Suburb), strings.TrimSpace(input.State), strings.TrimSpace(input.Postcode)} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		address = strings.Join(parts, ", ")
	}

	record := domain.StaffRecord{
		ID:          maxID + 1,
		Name:        domain.FullName(firstName, middleName, surname),
		FirstName:   firstName,
		MiddleName:  middleName,
		Surname:     surname,
		Position:    input.Position,
		AtlasID:     atlasID,
		State:       strings.TrimSpace(input.State),
		TeamStatus:  input.TeamStatus,
		DateOfBirth: orNotProvided(input.DateOfBirth),
		CreatedDate: creationDate(),
		Contact: domain.Contact{
			Email:            orNotProvided(input.Email),
			Phone:            orNotProvided(formatPhone(strings.TrimSpace(input.Phone))),
			Address:          orNotProvided(address),
			EmergencyContact: "Not provided",
		},
		Insurance: domain.Insurance{
			ProfessionalIndemnity: domain.InsurancePolicy{Status: domain.StatusCurrent},
			PublicLiability:       domain.InsurancePolicy{Status: domain.StatusCurrent},
			WorkCover:             domain.WorkCover{Status: domain.StatusCurrent},
		},
		DriverLicence: []domain.DriverLicence{},
		HRWLicence:    []domain.HRWLicence{},
		CardLicences:  []domain.CardLicence{},
		Forms:         []domain.Form{},
		PoliceCheck:   []domain.PoliceCheck{},
		Qualifications: domain.Qualifications{
			Diplomas:     []domain.Qualification{},
			Certificates: []domain.Qualification{},
			SOA:          []domain.SOA{},
		},
	}

	s.records = append(s.records, record)
	s.persistLocked(ctx)
	s.publish(ctx, events.EventStaffCreated, record.AtlasID, actor.Username, events.StaffCreatedPayload{
		StaffID:  record.ID,
		Name:     record.Name,
		Position: record.Position,
		State:    record.State,
	})

	cloned := cloneRecord(record)
	return &cloned, nil
}

// Update applies one section-scoped patch to the record with the given
// internal id. The id, not the AtlasID, locates the record because a contact
// patch may change the AtlasID itself.
func (s *RosterService) Update(ctx context.Context, actor *domain.User, id int, patch domain.SectionPatch) (*domain.StaffRecord, error) {
	if err := requireLogin(actor); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.records {
		if s.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NewNotFound("staff record", map[string]any{"id": id})
	}

	rec := &s.records[idx]
	oldAtlasID := rec.AtlasID
	section, err := s.applyPatch(rec, patch)
	if err != nil {
		return nil, err
	}

	s.persistLocked(ctx)
	s.publish(ctx, events.EventStaffUpdated, rec.AtlasID, actor.Username, events.StaffUpdatedPayload{
		StaffID:    rec.ID,
		Section:    section,
		OldAtlasID: changedFrom(oldAtlasID, rec.AtlasID),
	})

	cloned := cloneRecord(*rec)
	return &cloned, nil
}

func (s *RosterService) applyPatch(rec *domain.StaffRecord, patch domain.SectionPatch) (string, error) {
	switch p := patch.(type) {
	case domain.ContactPatch:
		return "contact", s.applyContactPatch(rec, p)
	case domain.InsurancePatch:
		return "insurance", applyInsurancePatch(rec, p)
	case domain.DriverLicencePatch:
		if p.Index < 0 || p.Index >= len(rec.DriverLicence) {
			return "", apperrors.NewValidationError("driver licence index out of range", map[string]any{"index": p.Index})
		}
		rec.DriverLicence[p.Index] = p.Licence
		return "driver", nil
	case domain.HRWLicencePatch:
		if p.Index < 0 || p.Index >= len(rec.HRWLicence) {
			return "", apperrors.NewValidationError("hrw licence index out of range", map[string]any{"index": p.Index})
		}
		rec.HRWLicence[p.Index] = p.Licence
		return "hrw", nil
	case domain.CardLicencePatch:
		if p.Index < 0 || p.Index >= len(rec.CardLicences) {
			return "", apperrors.NewValidationError("card licence index out of range", map[string]any{"index": p.Index})
		}
		rec.CardLicences[p.Index] = p.Licence
		return "cards", nil
	case domain.FormPatch:
		if p.Index < 0 || p.Index >= len(rec.Forms) {
			return "", apperrors.NewValidationError("form index out of range", map[string]any{"index": p.Index})
		}
		rec.Forms[p.Index] = p.Form
		return "forms", nil
	case domain.PoliceCheckPatch:
		// The police check collection holds one active entry at index 0.
		if len(rec.PoliceCheck) == 0 {
			rec.PoliceCheck = append(rec.PoliceCheck, p.Check)
		} else {
			rec.PoliceCheck[0] = p.Check
		}
		return "police", nil
	case domain.QualificationPatch:
		return "quals", applyQualificationPatch(rec, p)
	default:
		return "", apperrors.NewValidationError("unknown section patch", nil)
	}
}

func (s *RosterService) applyContactPatch(rec *domain.StaffRecord, p domain.ContactPatch) error {
	firstName := sentenceCase(p.FirstName)
	surname := sentenceCase(p.Surname)
	middleName := ""
	if strings.TrimSpace(p.MiddleName) != "" {
		middleName = sentenceCase(p.MiddleName)
	}

	if firstName == "" || surname == "" {
		return apperrors.NewValidationError("first name and surname are required", nil)
	}
	if !validNamePart(firstName) || !validNamePart(surname) || (middleName != "" && !validNamePart(middleName)) {
		return apperrors.NewValidationError("names can only contain letters, hyphens, and apostrophes", nil)
	}

	rec.FirstName = firstName
	rec.MiddleName = middleName
	rec.Surname = surname
	rec.Name = domain.FullName(firstName, middleName, surname)

	// Re-derive the AtlasID, excluding this record from the collision scan
	// so an unchanged name keeps its id without gaining a suffix.
	if newID := generateAtlasID(s.records, firstName, surname, middleName, rec.ID); newID != "" {
		rec.AtlasID = newID
	}

	rec.Contact.Email = p.Email
	rec.Contact.Phone = formatPhone(p.Phone)
	rec.Contact.Address = p.Address
	rec.Contact.EmergencyContact = p.EmergencyContact
	return nil
}

func applyInsurancePatch(rec *domain.StaffRecord, p domain.InsurancePatch) error {
	switch p.Slot {
	case domain.SlotProfessionalIndemnity:
		rec.Insurance.ProfessionalIndemnity = domain.InsurancePolicy{
			Provider: p.Provider, Number: p.Number, StartDate: p.StartDate, Expiry: p.Expiry, Status: p.Status,
		}
	case domain.SlotPublicLiability:
		rec.Insurance.PublicLiability = domain.InsurancePolicy{
			Provider: p.Provider, Number: p.Number, StartDate: p.StartDate, Expiry: p.Expiry, Status: p.Status,
		}
	case domain.SlotWorkCover:
		rec.Insurance.WorkCover = domain.WorkCover{Number: p.Number, Expiry: p.Expiry, Status: p.Status}
	default:
		return apperrors.NewValidationError("unknown insurance slot", map[string]any{"slot": string(p.Slot)})
	}
	return nil
}

func applyQualificationPatch(rec *domain.StaffRecord, p domain.QualificationPatch) error {
	switch p.Tab {
	case domain.TabDiplomas, domain.TabCertificates:
		entries := rec.Qualifications.Diplomas
		if p.Tab == domain.TabCertificates {
			entries = rec.Qualifications.Certificates
		}
		if p.Index < 0 || p.Index >= len(entries) {
			return apperrors.NewValidationError("qualification index out of range", map[string]any{"index": p.Index})
		}
		entries[p.Index] = domain.Qualification{Code: p.Code, Name: p.Name, CompletionDate: p.CompletionDate, Type: p.Type}
	case domain.TabSOA:
		if p.Index < 0 || p.Index >= len(rec.Qualifications.SOA) {
			return apperrors.NewValidationError("qualification index out of range", map[string]any{"index": p.Index})
		}
		rec.Qualifications.SOA[p.Index] = domain.SOA{Code: p.Code, Name: p.Name, CompletionDate: p.CompletionDate, CompletedBy: p.CompletedBy}
	default:
		return apperrors.NewValidationError("unknown qualification tab", map[string]any{"tab": string(p.Tab)})
	}
	return nil
}

// Delete removes every record carrying the AtlasID. Missing ids are a
// no-op, not an error. Administrator only.
func (s *RosterService) Delete(ctx context.Context, actor *domain.User, atlasID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.records)
	s.records = slices.DeleteFunc(s.records, func(rec domain.StaffRecord) bool {
		return rec.AtlasID == atlasID
	})
	s.persistLocked(ctx)

	if removed := before - len(s.records); removed > 0 {
		s.publish(ctx, events.EventStaffDeleted, atlasID, actor.Username, nil)
	}
	return nil
}

// AddSubRecord appends a blank entry to one of the ordered sub-collections
// and returns the updated record. New entries start with status current,
// except forms which start pending.
func (s *RosterService) AddSubRecord(ctx context.Context, actor *domain.User, id int, section domain.Section, tab domain.QualTab) (*domain.StaffRecord, error) {
	if err := requireLogin(actor); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findLocked(id)
	if rec == nil {
		return nil, apperrors.NewNotFound("staff record", map[string]any{"id": id})
	}

	var index int
	switch section {
	case domain.SectionDriver:
		rec.DriverLicence = append(rec.DriverLicence, domain.DriverLicence{Status: domain.StatusCurrent})
		index = len(rec.DriverLicence) - 1
	case domain.SectionHRW:
		rec.HRWLicence = append(rec.HRWLicence, domain.HRWLicence{Status: domain.StatusCurrent})
		index = len(rec.HRWLicence) - 1
	case domain.SectionCards:
		rec.CardLicences = append(rec.CardLicences, domain.CardLicence{Status: domain.StatusCurrent})
		index = len(rec.CardLicences) - 1
	case domain.SectionForms:
		rec.Forms = append(rec.Forms, domain.Form{Status: domain.StatusPending})
		index = len(rec.Forms) - 1
	case domain.SectionQuals:
		switch tab {
		case domain.TabDiplomas:
			rec.Qualifications.Diplomas = append(rec.Qualifications.Diplomas, domain.Qualification{Type: "Diploma"})
			index = len(rec.Qualifications.Diplomas) - 1
		case domain.TabCertificates:
			rec.Qualifications.Certificates = append(rec.Qualifications.Certificates, domain.Qualification{Type: "Certificate"})
			index = len(rec.Qualifications.Certificates) - 1
		case domain.TabSOA:
			rec.Qualifications.SOA = append(rec.Qualifications.SOA, domain.SOA{})
			index = len(rec.Qualifications.SOA) - 1
		default:
			return nil, apperrors.NewValidationError("unknown qualification tab", map[string]any{"tab": string(tab)})
		}
	default:
		return nil, apperrors.NewValidationError("section does not support adding entries", map[string]any{"section": string(section)})
	}

	s.persistLocked(ctx)
	s.publish(ctx, events.EventSubRecordAdded, rec.AtlasID, actor.Username, events.SubRecordPayload{
		StaffID: rec.ID, Section: section, Index: index,
	})

	cloned := cloneRecord(*rec)
	return &cloned, nil
}

// DeleteSubRecord removes one entry of an ordered sub-collection by index.
func (s *RosterService) DeleteSubRecord(ctx context.Context, actor *domain.User, id int, section domain.Section, tab domain.QualTab, index int) (*domain.StaffRecord, error) {
	if err := requireLogin(actor); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findLocked(id)
	if rec == nil {
		return nil, apperrors.NewNotFound("staff record", map[string]any{"id": id})
	}

	outOfRange := func(length int) error {
		return apperrors.NewValidationError("sub-record index out of range", map[string]any{"index": index, "length": length})
	}

	switch section {
	case domain.SectionDriver:
		if index < 0 || index >= len(rec.DriverLicence) {
			return nil, outOfRange(len(rec.DriverLicence))
		}
		rec.DriverLicence = slices.Delete(rec.DriverLicence, index, index+1)
	case domain.SectionHRW:
		if index < 0 || index >= len(rec.HRWLicence) {
			return nil, outOfRange(len(rec.HRWLicence))
		}
		rec.HRWLicence = slices.Delete(rec.HRWLicence, index, index+1)
	case domain.SectionCards:
		if index < 0 || index >= len(rec.CardLicences) {
			return nil, outOfRange(len(rec.CardLicences))
		}
		rec.CardLicences = slices.Delete(rec.CardLicences, index, index+1)
	case domain.SectionForms:
		if index < 0 || index >= len(rec.Forms) {
			return nil, outOfRange(len(rec.Forms))
		}
		rec.Forms = slices.Delete(rec.Forms, index, index+1)
	case domain.SectionQuals:
		switch tab {
		case domain.TabDiplomas:
			if index < 0 || index >= len(rec.Qualifications.Diplomas) {
				return nil, outOfRange(len(rec.Qualifications.Diplomas))
			}
			rec.Qualifications.Diplomas = slices.Delete(rec.Qualifications.Diplomas, index, index+1)
		case domain.TabCertificates:
			if index < 0 || index >= len(rec.Qualifications.Certificates) {
				return nil, outOfRange(len(rec.Qualifications.Certificates))
			}
			rec.Qualifications.Certificates = slices.Delete(rec.Qualifications.Certificates, index, index+1)
		case domain.TabSOA:
			if index < 0 || index >= len(rec.Qualifications.SOA) {
				return nil, outOfRange(len(rec.Qualifications.SOA))
			}
			rec.Qualifications.SOA = slices.Delete(rec.Qualifications.SOA, index, index+1)
		default:
			return nil, apperrors.NewValidationError("unknown qualification tab", map[string]any{"tab": string(tab)})
		}
	default:
		return nil, apperrors.NewValidationError("section does not support removing entries", map[string]any{"section": string(section)})
	}

	s.persistLocked(ctx)
	s.publish(ctx, events.EventSubRecordDeleted, rec.AtlasID, actor.Username, events.SubRecordPayload{
		StaffID: rec.ID, Section: section, Index: index,
	})

	cloned := cloneRecord(*rec)
	return &cloned, nil
}

// ImportAll replaces the whole collection atomically and persists it.
// Individual records are adopted as-is without field validation.
func (s *RosterService) ImportAll(ctx context.Context, actor *domain.User, records []domain.StaffRecord) (int, error) {
	if err := requireLogin(actor); err != nil {
		return 0, err
	}
	if records == nil {
		return 0, apperrors.NewValidationError("invalid data format: expected an array of staff records", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = cloneRecords(records)
	s.persistLocked(ctx)
	s.publish(ctx, events.EventRosterImported, "", actor.Username, events.RosterImportedPayload{RecordCount: len(records)})

	return len(s.records), nil
}

// ExportAll returns a deep snapshot of the full collection, unmodified. Like
// the other reads it needs no login; only mutations are gated.
func (s *RosterService) ExportAll() []domain.StaffRecord {
	return s.List()
}

func (s *RosterService) findLocked(id int) *domain.StaffRecord {
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i]
		}
	}
	return nil
}

func changedFrom(oldValue, newValue string) string {
	if oldValue == newValue {
		return ""
	}
	return oldValue
}

func orNotProvided(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not provided"
	}
	return value
}

func cloneRecord(rec domain.StaffRecord) domain.StaffRecord {
	rec.DriverLicence = slices.Clone(rec.DriverLicence)
	rec.HRWLicence = slices.Clone(rec.HRWLicence)
	rec.CardLicences = slices.Clone(rec.CardLicences)
	rec.Forms = slices.Clone(rec.Forms)
	rec.PoliceCheck = slices.Clone(rec.PoliceCheck)
	rec.Qualifications.Diplomas = slices.Clone(rec.Qualifications.Diplomas)
	rec.Qualifications.Certificates = slices.Clone(rec.Qualifications.Certificates)
	rec.Qualifications.SOA = slices.Clone(rec.Qualifications.SOA)
	return rec
}

func cloneRecords(records []domain.StaffRecord) []domain.StaffRecord {
	cloned := make([]domain.StaffRecord, len(records))
	for i, rec := range records {
		cloned[i] = cloneRecord(rec)
	}
	return cloned
}
