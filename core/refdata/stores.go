package refdata

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/hopenndrive/admin/core/entity"
)

var (
	cityDescriptor = entity.Descriptor[City]{
		Key: func(c City) string { return c.ID },
		Num: func(c City) int { return c.Num },
		Stamp: func(c City, id string, num int) City {
			c.ID, c.Num = id, num
			return c
		},
	}

	agencyDescriptor = entity.Descriptor[Agency]{
		Key: func(a Agency) string { return a.ID },
		Num: func(a Agency) int { return a.Num },
		Stamp: func(a Agency, id string, num int) Agency {
			a.ID, a.Num = id, num
			return a
		},
	}

	zoneDescriptor = entity.Descriptor[Zone]{
		Key: func(z Zone) string { return z.ID },
		Num: func(z Zone) int { return z.Num },
		Stamp: func(z Zone, id string, num int) Zone {
			z.ID, z.Num = id, num
			return z
		},
	}
)

func NewCityStore(latency time.Duration) *entity.Store[City] {
	return entity.NewStore(cityDescriptor, SeedCities(), latency)
}

func NewAgencyStore(latency time.Duration) *entity.Store[Agency] {
	return entity.NewStore(agencyDescriptor, SeedAgencies(), latency)
}

func NewZoneStore(latency time.Duration) *entity.Store[Zone] {
	return entity.NewStore(zoneDescriptor, SeedZones(), latency)
}

func CityTable() entity.Table[City] {
	return entity.Table[City]{
		Key: cityDescriptor.Key,
		Columns: []entity.Column[City]{
			{Key: "num", Label: "Num", Width: 6, Format: entity.FormatInt(func(c City) int { return c.Num })},
			{Key: "libelle", Label: "Libellé", Width: 24, Format: entity.FormatString(func(c City) string { return c.Libelle })},
			{Key: "description", Label: "Descriptions", Format: entity.FormatNullString(func(c City) null.String { return c.Description })},
		},
	}
}

func AgencyTable() entity.Table[Agency] {
	return entity.Table[Agency]{
		Key: agencyDescriptor.Key,
		Columns: []entity.Column[Agency]{
			{Key: "num", Label: "Num", Width: 6, Format: entity.FormatInt(func(a Agency) int { return a.Num })},
			{Key: "libelle", Label: "Libellé", Width: 24, Format: entity.FormatString(func(a Agency) string { return a.Libelle })},
			{Key: "description", Label: "Descriptions", Format: entity.FormatNullString(func(a Agency) null.String { return a.Description })},
		},
	}
}

func ZoneTable() entity.Table[Zone] {
	return entity.Table[Zone]{
		Key: zoneDescriptor.Key,
		Columns: []entity.Column[Zone]{
			{Key: "num", Label: "Num", Width: 6, Format: entity.FormatInt(func(z Zone) int { return z.Num })},
			{Key: "libelle", Label: "Libellé", Width: 20, Format: entity.FormatString(func(z Zone) string { return z.Libelle })},
			{Key: "villes", Label: "Villes", Width: 28, Format: entity.FormatString(func(z Zone) string { return z.Villes })},
			{Key: "descriptions", Label: "Descriptions", Format: entity.FormatNullString(func(z Zone) null.String { return z.Descriptions })},
			{Key: "nom_chef_agence", Label: "Chef d'agence", Width: 20, Format: entity.FormatNullString(func(z Zone) null.String { return z.NomChefAgence })},
			{Key: "telephone", Label: "Téléphone", Width: 20, Format: entity.FormatNullString(func(z Zone) null.String { return z.Telephone })},
		},
	}
}
