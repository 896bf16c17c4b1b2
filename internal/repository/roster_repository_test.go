package repository

import (
	"context"
	"testing"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
	"github.com/atlas-rto/workforce-matrix/internal/persistence"
)

func TestRosterRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRosterRepository(persistence.NewMemoryKV(), "staffData")

	records := []domain.StaffRecord{
		{
			ID:      7,
			AtlasID: "SAMPLEOne",
			Name:    "One Sample",
			Forms:   []domain.Form{{FormCode: "FRM201A", Status: domain.StatusPending}},
			Qualifications: domain.Qualifications{
				SOA: []domain.SOA{{Code: "TLILIC2001A", Name: "Forklift"}},
			},
		},
	}
	if err := repo.Save(ctx, records); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, ok, err := repo.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load() = ok=%v err=%v", ok, err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d records, want 1", len(loaded))
	}
	got := loaded[0]
	if got.ID != 7 || got.AtlasID != "SAMPLEOne" {
		t.Errorf("identity fields lost: %+v", got)
	}
	if len(got.Forms) != 1 || got.Forms[0].Status != domain.StatusPending {
		t.Errorf("forms lost in round trip: %+v", got.Forms)
	}
	if len(got.Qualifications.SOA) != 1 || got.Qualifications.SOA[0].Code != "TLILIC2001A" {
		t.Errorf("SOAs lost in round trip: %+v", got.Qualifications)
	}
}

func TestRosterRepositoryLoadTreatsBadDataAsMissing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		value string
		seed  bool
	}{
		{name: "nothing stored", seed: false},
		{name: "empty string", value: "", seed: true},
		{name: "corrupt json", value: "{oops", seed: true},
		{name: "wrong shape", value: `{"not":"an array"}`, seed: true},
		{name: "empty array", value: "[]", seed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := persistence.NewMemoryKV()
			if tt.seed {
				if err := kv.Set(ctx, "staffData", tt.value); err != nil {
					t.Fatal(err)
				}
			}

			repo := NewRosterRepository(kv, "staffData")
			_, ok, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if ok {
				t.Fatal("unusable payload reported as loadable")
			}
		})
	}
}
