package dto

import (
	"errors"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
)

// CreateStaffRequest carries the add-staff form fields.
type CreateStaffRequest struct {
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	Surname     string `json:"surname"`
	Position    string `json:"position"`
	State       string `json:"state"`
	TeamStatus  string `json:"teamStatus"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Suburb      string `json:"suburb"`
	Postcode    string `json:"postcode"`
}

// ContactFields mirrors the contact edit form.
type ContactFields struct {
	FirstName        string `json:"firstName"`
	MiddleName       string `json:"middleName"`
	Surname          string `json:"surname"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
}

// InsuranceFields mirrors the insurance edit form for one slot.
type InsuranceFields struct {
	Slot      domain.InsuranceSlot `json:"slot"`
	Provider  string               `json:"provider"`
	Number    string               `json:"number"`
	StartDate string               `json:"startDate"`
	Expiry    string               `json:"expiry"`
	Status    domain.Status        `json:"status"`
}

// QualificationFields mirrors the qualification edit form.
type QualificationFields struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	CompletionDate string `json:"completionDate"`
	Type           string `json:"type"`
	CompletedBy    string `json:"completedBy"`
}

// SectionPatchRequest is the wire form of one section-scoped edit. Exactly
// the sub-object named by Section must be present.
type SectionPatchRequest struct {
	Section       domain.Section        `json:"section"`
	Index         int                   `json:"index"`
	Tab           domain.QualTab        `json:"tab"`
	Contact       *ContactFields        `json:"contact,omitempty"`
	Insurance     *InsuranceFields      `json:"insurance,omitempty"`
	Driver        *domain.DriverLicence `json:"driver,omitempty"`
	HRW           *domain.HRWLicence    `json:"hrw,omitempty"`
	Card          *domain.CardLicence   `json:"card,omitempty"`
	Form          *domain.Form          `json:"form,omitempty"`
	Police        *domain.PoliceCheck   `json:"police,omitempty"`
	Qualification *QualificationFields  `json:"qualification,omitempty"`
}

// ToPatch converts the wire form into the store's tagged patch variant.
func (r SectionPatchRequest) ToPatch() (domain.SectionPatch, error) {
	switch r.Section {
	case "contact":
		if r.Contact == nil {
			return nil, errors.New("contact fields required")
		}
		return domain.ContactPatch{
			FirstName:        r.Contact.FirstName,
			MiddleName:       r.Contact.MiddleName,
			Surname:          r.Contact.Surname,
			Email:            r.Contact.Email,
			Phone:            r.Contact.Phone,
			Address:          r.Contact.Address,
			EmergencyContact: r.Contact.EmergencyContact,
		}, nil
	case "insurance":
		if r.Insurance == nil {
			return nil, errors.New("insurance fields required")
		}
		return domain.InsurancePatch{
			Slot:      r.Insurance.Slot,
			Provider:  r.Insurance.Provider,
			Number:    r.Insurance.Number,
			StartDate: r.Insurance.StartDate,
			Expiry:    r.Insurance.Expiry,
			Status:    r.Insurance.Status,
		}, nil
	case domain.SectionDriver:
		if r.Driver == nil {
			return nil, errors.New("driver licence fields required")
		}
		return domain.DriverLicencePatch{Index: r.Index, Licence: *r.Driver}, nil
	case domain.SectionHRW:
		if r.HRW == nil {
			return nil, errors.New("hrw licence fields required")
		}
		return domain.HRWLicencePatch{Index: r.Index, Licence: *r.HRW}, nil
	case domain.SectionCards:
		if r.Card == nil {
			return nil, errors.New("card licence fields required")
		}
		return domain.CardLicencePatch{Index: r.Index, Licence: *r.Card}, nil
	case domain.SectionForms:
		if r.Form == nil {
			return nil, errors.New("form fields required")
		}
		return domain.FormPatch{Index: r.Index, Form: *r.Form}, nil
	case domain.SectionPolice:
		if r.Police == nil {
			return nil, errors.New("police check fields required")
		}
		return domain.PoliceCheckPatch{Check: *r.Police}, nil
	case domain.SectionQuals:
		if r.Qualification == nil {
			return nil, errors.New("qualification fields required")
		}
		return domain.QualificationPatch{
			Tab:            r.Tab,
			Index:          r.Index,
			Code:           r.Qualification.Code,
			Name:           r.Qualification.Name,
			CompletionDate: r.Qualification.CompletionDate,
			Type:           r.Qualification.Type,
			CompletedBy:    r.Qualification.CompletedBy,
		}, nil
	default:
		return nil, errors.New("unknown section")
	}
}

// AddSubRecordRequest names the collection receiving a blank entry.
type AddSubRecordRequest struct {
	Tab domain.QualTab `json:"tab,omitempty"`
}
