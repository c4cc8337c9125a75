package refdata

import "github.com/volatiletech/null/v8"

// Seed data mirroring the network's current reference records. The stores
// start their sequence counters above the highest seeded num.

func SeedCities() []City {
	return []City{
		{ID: "1", Num: 1, Libelle: "Douala", Description: null.StringFrom("Capitale économique du Cameroun")},
		{ID: "2", Num: 2, Libelle: "Yaoundé", Description: null.StringFrom("Capitale politique du Cameroun")},
		{ID: "3", Num: 3, Libelle: "Bafoussam", Description: null.StringFrom("Chef-lieu de la région de l'Ouest")},
	}
}

func SeedAgencies() []Agency {
	return []Agency{
		{ID: "1", Num: 1, Libelle: "Agence Centrale", Description: null.StringFrom("Siège principal de l'organisation")},
		{ID: "2", Num: 2, Libelle: "Agence Nord", Description: null.StringFrom("Branche régionale Nord")},
		{ID: "3", Num: 3, Libelle: "Agence Sud", Description: null.StringFrom("Branche régionale Sud")},
		{ID: "4", Num: 4, Libelle: "Agence Est", Description: null.StringFrom("Branche régionale Est")},
		{ID: "5", Num: 5, Libelle: "Agence Ouest", Description: null.StringFrom("Branche régionale Ouest")},
	}
}

func SeedZones() []Zone {
	return []Zone{
		{
			ID: "1", Num: 1, Villes: "Douala, Buea, Limbé", Libelle: "Zone Littoral",
			Descriptions:  null.StringFrom("Zone côtière couvrant les villes principales"),
			NomChefAgence: null.StringFrom("Jean Dupont"),
			Telephone:     null.StringFrom("+237 6 71 23 45 67"),
		},
		{
			ID: "2", Num: 2, Villes: "Yaoundé, Soa", Libelle: "Zone Centre",
			Descriptions:  null.StringFrom("Zone centrale administrative"),
			NomChefAgence: null.StringFrom("Marie Kamdem"),
			Telephone:     null.StringFrom("+237 6 81 34 56 78"),
		},
		{
			ID: "3", Num: 3, Villes: "Bafoussam, Mbouda", Libelle: "Zone Ouest",
			Descriptions:  null.StringFrom("Zone montagneuse de l'ouest"),
			NomChefAgence: null.StringFrom("Pierre Fotso"),
			Telephone:     null.StringFrom("+237 6 91 45 67 89"),
		},
		{
			ID: "4", Num: 4, Villes: "Garoua, Ngaoundéré", Libelle: "Zone Nord",
			Descriptions:  null.StringFrom("Zone nord-camerounaise"),
			NomChefAgence: null.StringFrom("Ahmed Hassan"),
			Telephone:     null.StringFrom("+237 6 61 56 78 90"),
		},
		{
			ID: "5", Num: 5, Villes: "Bertoua, Battouri", Libelle: "Zone Est",
			Descriptions:  null.StringFrom("Zone forestière de l'est"),
			NomChefAgence: null.StringFrom("Sophie Nkomo"),
			Telephone:     null.StringFrom("+237 6 51 67 89 01"),
		},
	}
}
