package domain

// Position enumerates engagement types for roster members.
type Position string

const (
	PositionStaff      Position = "Staff"
	PositionContractor Position = "Contractor"
)

// Status is the compliance status carried by every sub-record. It is
// operator-entered and never derived from expiry dates.
type Status string

const (
	StatusCurrent   Status = "current"
	StatusExpiring  Status = "expiring"
	StatusExpired   Status = "expired"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Contact holds reachability details for a staff member.
type Contact struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
}

// InsurancePolicy is one named insurance slot (provider-issued cover).
type InsurancePolicy struct {
	Provider  string `json:"provider"`
	Number    string `json:"number"`
	StartDate string `json:"startDate"`
	Expiry    string `json:"expiry"`
	Status    Status `json:"status"`
}

// WorkCover is the third insurance slot; it carries no provider or start date.
type WorkCover struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	Status Status `json:"status"`
}

// Insurance groups the three fixed insurance slots.
type Insurance struct {
	ProfessionalIndemnity InsurancePolicy `json:"professionalIndemnity"`
	PublicLiability       InsurancePolicy `json:"publicLiability"`
	WorkCover             WorkCover       `json:"workCover"`
}

// DriverLicence is one driver licence entry.
type DriverLicence struct {
	State  string `json:"state"`
	Number string `json:"number"`
	Class  string `json:"class"`
	Expiry string `json:"expiry"`
	Status Status `json:"status"`
}

// HRWLicence is one High Risk Work licence entry.
type HRWLicence struct {
	Name    string `json:"name"`
	State   string `json:"state"`
	Number  string `json:"number"`
	Issued  string `json:"issued"`
	Expiry  string `json:"expiry"`
	Classes string `json:"classes"`
	Status  Status `json:"status"`
}

// CardLicence is one card-style licence entry (white card, trade card, etc).
type CardLicence struct {
	IssuedBy string `json:"issuedBy"`
	State    string `json:"state"`
	Number   string `json:"number"`
	Issued   string `json:"issued"`
	Expiry   string `json:"expiry"`
	Classes  string `json:"classes"`
	Status   Status `json:"status"`
}

// Form is one signed ATLAS compliance form.
type Form struct {
	FormCode   string `json:"formCode"`
	FormName   string `json:"formName"`
	SignedDate string `json:"signedDate"`
	Status     Status `json:"status"`
}

// PoliceCheck is a national police check outcome. The collection holds at
// most one active entry, always referenced at index 0.
type PoliceCheck struct {
	Number   string `json:"number"`
	Issued   string `json:"issued"`
	Expiry   string `json:"expiry"`
	Result   string `json:"result"`
	Comments string `json:"comments"`
	Status   Status `json:"status"`
}

// Qualification is a diploma or certificate entry.
type Qualification struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	CompletionDate string `json:"completionDate"`
	Type           string `json:"type"`
}

// SOA is a Statement of Attainment entry.
type SOA struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	CompletionDate string `json:"completionDate"`
	CompletedBy    string `json:"completedBy"`
}

// Qualifications groups the three qualification tabs.
type Qualifications struct {
	Diplomas     []Qualification `json:"diplomas"`
	Certificates []Qualification `json:"certificates"`
	SOA          []SOA           `json:"soa"`
}

// StaffRecord is the full compliance record for one staff member or
// contractor. AtlasID is the primary lookup key; ID is the stable internal
// join key that survives name (and therefore AtlasID) changes.
type StaffRecord struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	FirstName      string          `json:"firstName"`
	MiddleName     string          `json:"middleName,omitempty"`
	Surname        string          `json:"surname"`
	Position       Position        `json:"position"`
	AtlasID        string          `json:"atlasId"`
	State          string          `json:"state"`
	TeamStatus     string          `json:"teamStatus"`
	DateOfBirth    string          `json:"dateOfBirth"`
	CreatedDate    string          `json:"createdDate,omitempty"`
	Contact        Contact         `json:"contact"`
	Insurance      Insurance       `json:"insurance"`
	DriverLicence  []DriverLicence `json:"driverLicence"`
	HRWLicence     []HRWLicence    `json:"hrwLicence"`
	CardLicences   []CardLicence   `json:"cardLicences"`
	Forms          []Form          `json:"atlasforms"`
	PoliceCheck    []PoliceCheck   `json:"policeCheck"`
	Qualifications Qualifications  `json:"qualifications"`
}

// FullName joins the name parts, skipping an absent middle name.
func FullName(first, middle, surname string) string {
	if middle != "" {
		return first + " " + middle + " " + surname
	}
	return first + " " + surname
}
