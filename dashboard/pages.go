package dashboard

import (
	"github.com/volatiletech/null/v8"

	"github.com/hopenndrive/admin/core"
	"github.com/hopenndrive/admin/core/refdata"
)

// The entity pages. Each is a thin configuration over the generic controller;
// nothing below does its own I/O or state handling.

func NewCityPage(store Store[refdata.City], logger core.Logger) *Controller[refdata.City] {
	return NewController(PageConfig[refdata.City]{
		Name:  "ville",
		Table: refdata.CityTable(),
		Form: []FormField{
			{Key: "libelle", Label: "Libellé", Required: true},
			{Key: "description", Label: "Description", Multiline: true},
		},
		Key:   func(c refdata.City) string { return c.ID },
		Label: func(c refdata.City) string { return c.Libelle },
		Fill: func(c refdata.City) map[string]string {
			return map[string]string{
				"libelle":     c.Libelle,
				"description": c.Description.String,
			}
		},
		Decode: func(v map[string]string) (refdata.City, error) {
			f := refdata.CityFields{
				Libelle:     v["libelle"],
				Description: null.StringFrom(v["description"]),
			}
			if err := f.Validate(); err != nil {
				return refdata.City{}, err
			}
			return f.Record(), nil
		},
	}, store, logger)
}

func NewAgencyPage(store Store[refdata.Agency], logger core.Logger) *Controller[refdata.Agency] {
	return NewController(PageConfig[refdata.Agency]{
		Name:  "agence",
		Table: refdata.AgencyTable(),
		Form: []FormField{
			{Key: "libelle", Label: "Libellé", Required: true},
			{Key: "description", Label: "Description", Multiline: true},
		},
		Key:   func(a refdata.Agency) string { return a.ID },
		Label: func(a refdata.Agency) string { return a.Libelle },
		Fill: func(a refdata.Agency) map[string]string {
			return map[string]string{
				"libelle":     a.Libelle,
				"description": a.Description.String,
			}
		},
		Decode: func(v map[string]string) (refdata.Agency, error) {
			f := refdata.AgencyFields{
				Libelle:     v["libelle"],
				Description: null.StringFrom(v["description"]),
			}
			if err := f.Validate(); err != nil {
				return refdata.Agency{}, err
			}
			return f.Record(), nil
		},
	}, store, logger)
}

func NewZonePage(store Store[refdata.Zone], logger core.Logger) *Controller[refdata.Zone] {
	return NewController(PageConfig[refdata.Zone]{
		Name:  "zone",
		Table: refdata.ZoneTable(),
		Form: []FormField{
			{Key: "libelle", Label: "Libellé", Required: true},
			{Key: "villes", Label: "Villes", Required: true},
			{Key: "descriptions", Label: "Descriptions", Multiline: true},
			{Key: "nom_chef_agence", Label: "Nom du chef d'agence"},
			{Key: "telephone", Label: "Téléphone"},
		},
		Key:   func(z refdata.Zone) string { return z.ID },
		Label: func(z refdata.Zone) string { return z.Libelle },
		Fill: func(z refdata.Zone) map[string]string {
			return map[string]string{
				"libelle":         z.Libelle,
				"villes":          z.Villes,
				"descriptions":    z.Descriptions.String,
				"nom_chef_agence": z.NomChefAgence.String,
				"telephone":       z.Telephone.String,
			}
		},
		Decode: func(v map[string]string) (refdata.Zone, error) {
			f := refdata.ZoneFields{
				Villes:        v["villes"],
				Libelle:       v["libelle"],
				Descriptions:  null.StringFrom(v["descriptions"]),
				NomChefAgence: null.StringFrom(v["nom_chef_agence"]),
				Telephone:     null.StringFrom(v["telephone"]),
			}
			if err := f.Validate(); err != nil {
				return refdata.Zone{}, err
			}
			return f.Record(), nil
		},
	}, store, logger)
}
