package refdata

import (
	"context"
	"testing"

	"github.com/volatiletech/null/v8"

	"github.com/hopenndrive/admin/core/entity"
)

func TestCityFields_Validate(t *testing.T) {
	tests := []struct {
		name    string
		fields  CityFields
		wantErr bool
	}{
		{name: "valid", fields: CityFields{Libelle: "Kribi", Description: null.StringFrom("Ville balnéaire")}},
		{name: "libelle trimmed", fields: CityFields{Libelle: "  Kribi  "}},
		{name: "missing libelle", fields: CityFields{Description: null.StringFrom("lol")}, wantErr: true},
		{name: "whitespace libelle", fields: CityFields{Libelle: "   "}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.fields.Libelle != "Kribi" {
				t.Errorf("Validate() libelle = %q, want %q", tt.fields.Libelle, "Kribi")
			}
		})
	}
}

func TestCityFields_Validate_blankDescriptionBecomesNull(t *testing.T) {
	f := CityFields{Libelle: "Kribi", Description: null.StringFrom("   ")}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if f.Description.Valid {
		t.Errorf("Validate() description = %+v, want unset", f.Description)
	}
}

func TestZoneFields_Validate(t *testing.T) {
	f := ZoneFields{Libelle: "Zone Sud", Villes: " Kribi, Ebolowa "}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if f.Villes != "Kribi, Ebolowa" {
		t.Errorf("Validate() villes = %q", f.Villes)
	}
	if f.NomChefAgence.Valid || f.Telephone.Valid {
		t.Error("Validate() left blank optionals set")
	}

	f2 := ZoneFields{Libelle: "Zone Sud"}
	err := f2.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for missing villes")
	}
}

func TestNewCityStore_scenario(t *testing.T) {
	store := NewCityStore(0)
	ctx := context.Background()

	// a city created after the three seeds gets num 4
	rec, err := store.Create(ctx, City{Libelle: "Kribi", Description: null.StringFrom("Ville balnéaire")})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.Num != 4 {
		t.Errorf("Create() num = %d, want 4", rec.Num)
	}

	recs, _ := store.List(ctx)
	if len(recs) != 4 {
		t.Errorf("List() len = %d, want 4", len(recs))
	}
}

func TestNewZoneStore_fullReplaceUpdate(t *testing.T) {
	store := NewZoneStore(0)
	ctx := context.Background()

	// editing only the phone still submits the whole record
	f := ZoneFields{
		Villes:        "Yaoundé, Soa",
		Libelle:       "Zone Centre",
		Descriptions:  null.StringFrom("Zone centrale administrative"),
		NomChefAgence: null.StringFrom("Marie Kamdem"),
		Telephone:     null.StringFrom("+237 6 99 99 99 99"),
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	rec, err := store.Update(ctx, "2", f.Record())
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rec.ID != "2" || rec.Num != 2 {
		t.Errorf("Update() identity = (%q, %d), want (\"2\", 2)", rec.ID, rec.Num)
	}
	if rec.Telephone.String != "+237 6 99 99 99 99" {
		t.Errorf("Update() telephone = %q", rec.Telephone.String)
	}
	if rec.NomChefAgence.String != "Marie Kamdem" {
		t.Errorf("Update() chef = %q", rec.NomChefAgence.String)
	}
}

func TestNewAgencyStore_deleteUnknown(t *testing.T) {
	store := NewAgencyStore(0)
	if err := store.Delete(context.Background(), "10"); err != entity.ErrNotFound {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestCityTable_headers(t *testing.T) {
	view := CityTable().Render(SeedCities(), false)
	want := []string{"Num", "Libellé", "Descriptions"}
	for i, h := range want {
		if view.Headers[i] != h {
			t.Errorf("Render() header[%d] = %q, want %q", i, view.Headers[i], h)
		}
	}
	if len(view.Rows) != 3 {
		t.Fatalf("Render() rows = %d, want 3", len(view.Rows))
	}
	if got := view.Rows[0].Cells; got[0] != "1" || got[1] != "Douala" {
		t.Errorf("Render() cells = %v", got)
	}
}
