package service

import (
	"github.com/atlas-rto/workforce-matrix/internal/auth"
	"github.com/atlas-rto/workforce-matrix/internal/domain"
)

// SeedUsers is the default account list installed at startup.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			Username: "Judy Irmisch",
			Password: auth.ChecksumPassword("ATLAS2025"),
			Role:     domain.RoleAdministrator,
		},
	}
}

// SeedRoster is the built-in roster installed when no persisted data
// exists. It is persisted immediately after installation.
func SeedRoster() []domain.StaffRecord {
	return []domain.StaffRecord{
		{
			ID:          20,
			Name:        "David ADAM",
			FirstName:   "David",
			Surname:     "Adam",
			Position:    domain.PositionContractor,
			AtlasID:     "ADAMDavid",
			State:       "NSW",
			TeamStatus:  "Active",
			DateOfBirth: "12-Mar-1960",
			Contact: domain.Contact{
				Email:            "auskie1@optusnet.com.au",
				Phone:            "0409-992-215",
				Address:          "23 Picasso Cresent, Old Toongabbie, NSW, 2146",
				EmergencyContact: "Not provided",
			},
			Insurance: domain.Insurance{
				ProfessionalIndemnity: domain.InsurancePolicy{
					Provider:  "On File",
					Number:    "AU00022515-003",
					StartDate: "30-Jun-2025",
					Expiry:    "30-Jun-2026",
					Status:    domain.StatusCurrent,
				},
				PublicLiability: domain.InsurancePolicy{
					Provider:  "On File",
					Number:    "78 TRANZNT LIA",
					StartDate: "30-Jun-2025",
					Expiry:    "30-Jun-2026",
					Status:    domain.StatusCurrent,
				},
				WorkCover: domain.WorkCover{Status: domain.StatusCurrent},
			},
			DriverLicence: []domain.DriverLicence{
				{State: "NSW", Number: "8781AL", Class: "MC, R", Expiry: "30-Nov-2025", Status: domain.StatusExpiring},
			},
			HRWLicence: []domain.HRWLicence{
				{
					Name:    "SafeWork NSW National Licence to Perform High Risk Work",
					State:   "NSW",
					Number:  "HRW047164",
					Issued:  "20-Dec-2007",
					Expiry:  "20-Dec-2027",
					Classes: "WP LF LO HP",
					Status:  domain.StatusCurrent,
				},
				{
					Name:    "SafeWork NSW Accredited Assessor High Risk Work",
					State:   "NSW",
					Number:  "HN196837",
					Issued:  "17-Feb-1999",
					Expiry:  "17-Feb-2028",
					Classes: "WP LF LO",
					Status:  domain.StatusCurrent,
				},
			},
			CardLicences: []domain.CardLicence{},
			Forms: []domain.Form{
				{FormCode: "FRM201A Fit and Proper Declaration", FormName: "FRM201A Fit and Proper Declaration", SignedDate: "06-Oct-2025", Status: domain.StatusCompleted},
				{FormCode: "Police Check", FormName: "Police Check", SignedDate: "15-Oct-2025", Status: domain.StatusCompleted},
				{FormCode: "FRM3004 Confidentiality and Non Disclosure", FormName: "FRM3004 Confidentiality and Non Disclosure", SignedDate: "10-Nov-2025", Status: domain.StatusCompleted},
			},
			PoliceCheck: []domain.PoliceCheck{
				{Number: "Completed", Issued: "20-Oct-2025", Expiry: "20-Oct-2027", Result: "No Disclosable Court Outcomes", Status: domain.StatusCurrent},
			},
			Qualifications: domain.Qualifications{
				Diplomas: []domain.Qualification{},
				Certificates: []domain.Qualification{
					{Code: "TAE40110", Name: "Certificate IV in Training and Assessment", CompletionDate: "18-Jul-2013", Type: "Certificate"},
				},
				SOA: []domain.SOA{
					{Code: "TAEDEL301A", Name: "Provide work skill instruction", CompletionDate: "18-Jul-2013", CompletedBy: "Certificate- Part of"},
					{Code: "TAEASS402A", Name: "Assess competence", CompletionDate: "18-Jul-2013", CompletedBy: "Certificate- Part of"},
					{Code: "TLILIC2001A", Name: "Licence to operate a forklift truck", CompletionDate: "22-Jul-2013", CompletedBy: "Standalone"},
					{Code: "RIIWHS204D", Name: "Work safely at heights", CompletionDate: "28-Jul-2013", CompletedBy: "Standalone"},
				},
			},
		},
		{
			ID:          1,
			Name:        "William COURTWOOD",
			FirstName:   "William",
			Surname:     "Courtwood",
			Position:    domain.PositionStaff,
			AtlasID:     "COURTWOODWilliam",
			State:       "QLD",
			TeamStatus:  "Active",
			DateOfBirth: "04-Aug-1972",
			Contact: domain.Contact{
				Email:            "w.courtwood@atlastraining.com.au",
				Phone:            "0418-223-871",
				Address:          "8 Jacaranda Court, Caboolture, QLD, 4510",
				EmergencyContact: "Not provided",
			},
			Insurance: domain.Insurance{
				ProfessionalIndemnity: domain.InsurancePolicy{
					Provider:  "On File",
					Number:    "AU00022515-001",
					StartDate: "30-Jun-2025",
					Expiry:    "30-Jun-2026",
					Status:    domain.StatusCurrent,
				},
				PublicLiability: domain.InsurancePolicy{Status: domain.StatusCurrent},
				WorkCover:       domain.WorkCover{Number: "WC114720", Expiry: "30-Jun-2025", Status: domain.StatusExpired},
			},
			DriverLicence: []domain.DriverLicence{
				{State: "QLD", Number: "077231904", Class: "C", Expiry: "04-Aug-2028", Status: domain.StatusCurrent},
			},
			HRWLicence:   []domain.HRWLicence{},
			CardLicences: []domain.CardLicence{
				{IssuedBy: "WorkSafe QLD", State: "QLD", Number: "WC99213", Issued: "11-Mar-2019", Expiry: "", Classes: "White Card", Status: domain.StatusCurrent},
			},
			Forms: []domain.Form{
				{FormCode: "FRM201A Fit and Proper Declaration", FormName: "FRM201A Fit and Proper Declaration", SignedDate: "02-Oct-2025", Status: domain.StatusCompleted},
			},
			PoliceCheck: []domain.PoliceCheck{
				{Number: "NPC2025-8841", Issued: "01-Sep-2025", Expiry: "01-Sep-2027", Result: "No Disclosable Court Outcomes", Status: domain.StatusCurrent},
			},
			Qualifications: domain.Qualifications{
				Diplomas: []domain.Qualification{
					{Code: "TAE50116", Name: "Diploma of Vocational Education and Training", CompletionDate: "12-Nov-2018", Type: "Diploma"},
				},
				Certificates: []domain.Qualification{},
				SOA: []domain.SOA{
					{Code: "TLILIC0003", Name: "Licence to operate a forklift truck", CompletionDate: "25-Jul-2019", CompletedBy: "Standalone"},
				},
			},
		},
		{
			ID:          2,
			Name:        "Trevor ALDRED",
			FirstName:   "Trevor",
			Surname:     "Aldred",
			Position:    domain.PositionContractor,
			AtlasID:     "ALDREDTrevor",
			State:       "VIC",
			TeamStatus:  "Active",
			DateOfBirth: "27-Jan-1965",
			Contact: domain.Contact{
				Email:            "trevaldred@bigpond.com",
				Phone:            "0400-318-554",
				Address:          "14 Banksia Street, Werribee, VIC, 3030",
				EmergencyContact: "Not provided",
			},
			Insurance: domain.Insurance{
				ProfessionalIndemnity: domain.InsurancePolicy{
					Provider:  "On File",
					Number:    "AU00022515-007",
					StartDate: "30-Jun-2024",
					Expiry:    "30-Jun-2025",
					Status:    domain.StatusExpired,
				},
				PublicLiability: domain.InsurancePolicy{
					Provider:  "On File",
					Number:    "81 TRANZNT LIA",
					StartDate: "30-Jun-2025",
					Expiry:    "30-Jun-2026",
					Status:    domain.StatusCurrent,
				},
				WorkCover: domain.WorkCover{Status: domain.StatusCurrent},
			},
			DriverLicence: []domain.DriverLicence{
				{State: "VIC", Number: "022148816", Class: "HR", Expiry: "27-Jan-2027", Status: domain.StatusCurrent},
			},
			HRWLicence: []domain.HRWLicence{
				{
					Name:    "WorkSafe VIC Licence to Perform High Risk Work",
					State:   "VIC",
					Number:  "HRW221904",
					Issued:  "03-May-2012",
					Expiry:  "03-May-2026",
					Classes: "LF",
					Status:  domain.StatusExpiring,
				},
			},
			CardLicences: []domain.CardLicence{},
			Forms: []domain.Form{
				{FormCode: "FRM3004 Confidentiality and Non Disclosure", FormName: "FRM3004 Confidentiality and Non Disclosure", SignedDate: "", Status: domain.StatusPending},
			},
			PoliceCheck: []domain.PoliceCheck{},
			Qualifications: domain.Qualifications{
				Diplomas:     []domain.Qualification{},
				Certificates: []domain.Qualification{
					{Code: "TAE40116", Name: "Certificate IV in Training and Assessment", CompletionDate: "03-Feb-2020", Type: "Certificate"},
				},
				SOA: []domain.SOA{},
			},
		},
	}
}
