package config

import "github.com/fieldplan/tourplan/core/model"

// NationalCentroid is the fallback coordinate when a region is unknown.
var NationalCentroid = model.Coordinates{Lat: 41.9, Lon: 12.5}

// RegionalCentroids returns approximate centroids for the Italian regions,
// used when address-level geocoding degrades.
func RegionalCentroids() map[string]model.Coordinates {
	return map[string]model.Coordinates{
		"Abruzzo":               {Lat: 42.35, Lon: 13.40},
		"Basilicata":            {Lat: 40.64, Lon: 15.80},
		"Calabria":              {Lat: 38.91, Lon: 16.59},
		"Campania":              {Lat: 40.84, Lon: 14.25},
		"Emilia-Romagna":        {Lat: 44.49, Lon: 11.34},
		"Friuli Venezia Giulia": {Lat: 45.65, Lon: 13.77},
		"Lazio":                 {Lat: 41.89, Lon: 12.48},
		"Liguria":               {Lat: 44.41, Lon: 8.93},
		"Lombardia":             {Lat: 45.46, Lon: 9.19},
		"Marche":                {Lat: 43.62, Lon: 13.51},
		"Molise":                {Lat: 41.56, Lon: 14.66},
		"Piemonte":              {Lat: 45.07, Lon: 7.69},
		"Puglia":                {Lat: 41.12, Lon: 16.87},
		"Sardegna":              {Lat: 39.22, Lon: 9.12},
		"Sicilia":               {Lat: 38.12, Lon: 13.36},
		"Toscana":               {Lat: 43.77, Lon: 11.25},
		"Trentino-Alto Adige":   {Lat: 46.07, Lon: 11.12},
		"Umbria":                {Lat: 43.11, Lon: 12.39},
		"Valle d'Aosta":         {Lat: 45.74, Lon: 7.32},
		"Veneto":                {Lat: 45.44, Lon: 12.32},
	}
}

// DefaultRoster is the standard inspector team. Paolo works his own
// north-western territory exclusively; the others cover the whole country.
func DefaultRoster() []model.Inspector {
	pagnacco := model.Coordinates{Lat: 46.08, Lon: 13.18}
	return []model.Inspector{
		{Name: "Adrian", Base: pagnacco},
		{Name: "Salvatore", Base: pagnacco},
		{Name: "Mattia", Base: pagnacco},
		{Name: "Paolo", Base: model.Coordinates{Lat: 45.46, Lon: 9.19},
			Regions: []string{"Lombardia", "Piemonte", "Liguria", "Valle d'Aosta"}},
	}
}

// DefaultHolidays lists the Italian national holidays for 2025 and 2026.
func DefaultHolidays() map[string]string {
	return map[string]string{
		"2025-01-01": "Capodanno",
		"2025-01-06": "Epifania",
		"2025-04-20": "Pasqua",
		"2025-04-21": "Lunedì dell'Angelo",
		"2025-04-25": "Festa della Liberazione",
		"2025-05-01": "Festa del Lavoro",
		"2025-06-02": "Festa della Repubblica",
		"2025-08-15": "Ferragosto",
		"2025-11-01": "Ognissanti",
		"2025-12-08": "Immacolata Concezione",
		"2025-12-25": "Natale",
		"2025-12-26": "Santo Stefano",
		"2026-01-01": "Capodanno",
		"2026-01-06": "Epifania",
		"2026-04-05": "Pasqua",
		"2026-04-06": "Lunedì dell'Angelo",
		"2026-04-25": "Festa della Liberazione",
		"2026-05-01": "Festa del Lavoro",
		"2026-06-02": "Festa della Repubblica",
		"2026-08-15": "Ferragosto",
		"2026-11-01": "Ognissanti",
		"2026-12-08": "Immacolata Concezione",
		"2026-12-25": "Natale",
		"2026-12-26": "Santo Stefano",
	}
}
