package domain

// Section identifies one of the ordered sub-record collections.
type Section string

const (
	SectionDriver Section = "driver"
	SectionHRW    Section = "hrw"
	SectionCards  Section = "cards"
	SectionForms  Section = "forms"
	SectionPolice Section = "police"
	SectionQuals  Section = "quals"
)

// InsuranceSlot names one of the three fixed insurance slots.
type InsuranceSlot string

const (
	SlotProfessionalIndemnity InsuranceSlot = "professionalIndemnity"
	SlotPublicLiability       InsuranceSlot = "publicLiability"
	SlotWorkCover             InsuranceSlot = "workCover"
)

// QualTab names one of the qualification tabs.
type QualTab string

const (
	TabDiplomas     QualTab = "diplomas"
	TabCertificates QualTab = "certificates"
	TabSOA          QualTab = "soa"
)

// SectionPatch is one section-scoped edit. Each variant carries the full
// field set for its section; the store applies exactly the fields the
// variant declares.
type SectionPatch interface {
	isSectionPatch()
}

// ContactPatch edits identity and contact fields. Name parts are
// sentence-cased on apply and the record's name and AtlasID are re-derived.
type ContactPatch struct {
	FirstName        string
	MiddleName       string
	Surname          string
	Email            string
	Phone            string
	Address          string
	EmergencyContact string
}

// InsurancePatch edits one insurance slot. Provider and StartDate are
// ignored for the workCover slot, which does not carry them.
type InsurancePatch struct {
	Slot      InsuranceSlot
	Provider  string
	Number    string
	StartDate string
	Expiry    string
	Status    Status
}

// DriverLicencePatch edits one driver licence entry by position.
type DriverLicencePatch struct {
	Index   int
	Licence DriverLicence
}

// HRWLicencePatch edits one HRW licence entry by position.
type HRWLicencePatch struct {
	Index   int
	Licence HRWLicence
}

// CardLicencePatch edits one card licence entry by position.
type CardLicencePatch struct {
	Index   int
	Licence CardLicence
}

// FormPatch edits one form entry by position.
type FormPatch struct {
	Index int
	Form  Form
}

// PoliceCheckPatch edits the single active police check at index 0.
type PoliceCheckPatch struct {
	Check PoliceCheck
}

// QualificationPatch edits one entry of a qualification tab. CompletedBy is
// used for the soa tab, Type for diplomas and certificates.
type QualificationPatch struct {
	Tab            QualTab
	Index          int
	Code           string
	Name           string
	CompletionDate string
	Type           string
	CompletedBy    string
}

func (ContactPatch) isSectionPatch()       {}
func (InsurancePatch) isSectionPatch()     {}
func (DriverLicencePatch) isSectionPatch() {}
func (HRWLicencePatch) isSectionPatch()    {}
func (CardLicencePatch) isSectionPatch()   {}
func (FormPatch) isSectionPatch()          {}
func (PoliceCheckPatch) isSectionPatch()   {}
func (QualificationPatch) isSectionPatch() {}
