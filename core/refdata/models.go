package refdata

import (
	"github.com/volatiletech/null/v8"

	"github.com/hopenndrive/admin/core"
)

// City is a city of the driving-school network.
type City struct {
	ID          string      `json:"id"`
	Num         int         `json:"num"`
	Libelle     string      `json:"libelle"`
	Description null.String `json:"description"`
}

// Agency is a branch of the network.
type Agency struct {
	ID          string      `json:"id"`
	Num         int         `json:"num"`
	Libelle     string      `json:"libelle"`
	Description null.String `json:"description"`
}

// Zone is a coverage area grouping several cities under one agency head.
type Zone struct {
	ID            string      `json:"id"`
	Num           int         `json:"num"`
	Villes        string      `json:"villes"`
	Libelle       string      `json:"libelle"`
	Descriptions  null.String `json:"descriptions"`
	NomChefAgence null.String `json:"nom_chef_agence"`
	Telephone     null.String `json:"telephone"`
}

// CityFields contains information needed to create or replace a City.
type CityFields struct {
	Libelle     string      `json:"libelle" validate:"required"`
	Description null.String `json:"description"`
}

func (f *CityFields) Validate() error {
	f.Libelle = core.CleanString(f.Libelle)
	f.Description = cleanNull(f.Description)
	return core.Validate.Struct(f)
}

func (f *CityFields) Record() City {
	return City{Libelle: f.Libelle, Description: f.Description}
}

// AgencyFields contains information needed to create or replace an Agency.
type AgencyFields struct {
	Libelle     string      `json:"libelle" validate:"required"`
	Description null.String `json:"description"`
}

func (f *AgencyFields) Validate() error {
	f.Libelle = core.CleanString(f.Libelle)
	f.Description = cleanNull(f.Description)
	return core.Validate.Struct(f)
}

func (f *AgencyFields) Record() Agency {
	return Agency{Libelle: f.Libelle, Description: f.Description}
}

// ZoneFields contains information needed to create or replace a Zone.
type ZoneFields struct {
	Villes        string      `json:"villes" validate:"required"`
	Libelle       string      `json:"libelle" validate:"required"`
	Descriptions  null.String `json:"descriptions"`
	NomChefAgence null.String `json:"nom_chef_agence"`
	Telephone     null.String `json:"telephone"`
}

func (f *ZoneFields) Validate() error {
	f.Villes = core.CleanString(f.Villes)
	f.Libelle = core.CleanString(f.Libelle)
	f.Descriptions = cleanNull(f.Descriptions)
	f.NomChefAgence = cleanNull(f.NomChefAgence)
	f.Telephone = cleanNull(f.Telephone)
	return core.Validate.Struct(f)
}

func (f *ZoneFields) Record() Zone {
	return Zone{
		Villes:        f.Villes,
		Libelle:       f.Libelle,
		Descriptions:  f.Descriptions,
		NomChefAgence: f.NomChefAgence,
		Telephone:     f.Telephone,
	}
}

// cleanNull trims a nullable text field; a blank value is stored as null,
// never as an empty string, to distinguish "unset" from "empty".
func cleanNull(s null.String) null.String {
	v := core.CleanString(s.String)
	if v == "" {
		return null.String{}
	}
	return null.StringFrom(v)
}
