package domain

import "github.com/google/uuid"

type seedEntry struct {
	name     string
	category Category
}

var seedServices = []seedEntry{
	{"Manichiura Semipermanentă", CategoryNails},
	{"Manichiura Gel", CategoryNails},
	{"Manichiura Simplă", CategoryNails},
	{"Întreținere Manichiură", CategoryNails},
	{"Pedichiură Semipermanentă", CategoryNails},
	{"Întreținere Pedichiură", CategoryNails},
	{"Manichiură și Pedichiură Simplă", CategoryNails},
	{"Manichiură și Pedichiură Semipermanentă", CategoryNails},
	{"Manichiură Gel și Pedichiură Simplă", CategoryNails},
	{"Manichiură Gel și Pedichiură Semipermanentă", CategoryNails},
	{"Tuns Păr Lung", CategoryHair},
	{"Tuns Păr Scurt", CategoryHair},
	{"Tuns Păr Mediu", CategoryHair},
	{"Tuns Păr Lung + Coafat", CategoryHair},
	{"Tuns Păr Scurt + Coafat", CategoryHair},
	{"Tuns Păr Mediu + Coafat", CategoryHair},
	{"Vopsit Păr Lung", CategoryHair},
	{"Vopsit Păr Scurt", CategoryHair},
	{"Vopsit Păr Mediu", CategoryHair},
	{"Decolorare Păr Scurt", CategoryHair},
	{"Decolorare Păr Lung", CategoryHair},
	{"Decolorare Păr Mediu", CategoryHair},
	{"Spălat", CategoryHair},
	{"Coafat Păr Lung", CategoryHair},
	{"Coafat Păr Scurt", CategoryHair},
	{"Coafat Păr Mediu", CategoryHair},
	{"Coafat Ocazie", CategoryHair},
	{"Epilare Definitivă Full Body", CategoryCosmetics},
	{"Epilare Definitivă Zona Inghinală", CategoryCosmetics},
	{"Epilare Definitivă Axile", CategoryCosmetics},
	{"Epilare Definitivă Mâini", CategoryCosmetics},
	{"Epilare Definitivă Picioare", CategoryCosmetics},
	{"Epilare cu Ceară Full-Body", CategoryCosmetics},
	{"Epilare cu Ceară Axile", CategoryCosmetics},
	{"Epilare cu Ceară Zona Inghinală", CategoryCosmetics},
	{"Epilare cu Ceară Picioare", CategoryCosmetics},
	{"Epilare cu Ceară Mâini", CategoryCosmetics},
	{"Epilare cu Ceară Mustață", CategoryCosmetics},
	{"Pensat", CategoryCosmetics},
	{"Machiaj de Zi", CategoryCosmetics},
	{"Machiaj de Seară", CategoryCosmetics},
	{"Machiaj de Ocazie", CategoryCosmetics},
	{"Remodelare Corporală", CategoryCosmetics},
	{"Ședință de Îndepărtare Tatuaj", CategoryCosmetics},
	{"Solar", CategoryCosmetics},
}

var seedArtists = []seedEntry{
	{"Roxana", CategoryNails},
	{"Maria", CategoryNails},
	{"Eva", CategoryCosmetics},
	{"Daria", CategoryHair},
	{"Roxana", CategoryHair},
	{"Maria", CategoryHair},
}

// SeedServices returns the salon's fixed service list. Ids are derived from
// name and category so reseeding never duplicates rows.
func SeedServices() []Service {
	out := make([]Service, 0, len(seedServices))
	for _, e := range seedServices {
		out = append(out, Service{
			ID:       seedID("service", e),
			Name:     e.name,
			Category: e.category,
		})
	}
	return out
}

func SeedArtists() []Artist {
	out := make([]Artist, 0, len(seedArtists))
	for _, e := range seedArtists {
		out = append(out, Artist{
			ID:             seedID("artist", e),
			Name:           e.name,
			Specialization: e.category,
		})
	}
	return out
}

func seedID(kind string, e seedEntry) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("salonbook:"+kind+":"+string(e.category)+":"+e.name))
}
