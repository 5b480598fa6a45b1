// Package refdata - Default reference values
package refdata

import "freelance-pricing/core/types"

// Defaults returns the canonical reference data set for monthly community
// management offers on the French market. Callers own the returned value;
// publish it once and treat it as frozen.
func Defaults() *Tables {
	return &Tables{
		Rules: Rules{
			MinimumCompleteOffer: 750,
			GenericFloor:         300,
			MaxPrice:             1500,
			SocialChargeRate:     0.27,
			MinimumHourlyRate:    15,
			StretchFactor:        1.15,
			ServiceBonusRate:     0.05,
			ComboBonus:           1.02,
			ObjectiveFloorRate:   0.8,
			PostureCeiling:       1000,
			OverloadClients:      5,
			OverloadHours:        25,
			AnnouncementMinChars: 20,
			DefaultObjective:     2000,
			DefaultHours:         20,
		},

		BasePrices: map[types.OfferTier]int{
			types.OfferComplete: 750,
			types.OfferPartial:  450,
			types.OfferSpecific: 300,
		},

		Experience: map[types.ExperienceTier]float64{
			types.ExperienceBeginner:     1.0,
			types.ExperienceIntermediate: 1.12,
			types.ExperienceExpert:       1.3,
		},

		Transformation: map[types.TransformationTier]float64{
			types.TransformationLow:    0.85,
			types.TransformationMedium: 1.0,
			types.TransformationHigh:   1.15,
		},

		PastClients: map[string]float64{
			"aucun": 1.0,
			"1-3":   1.0,
			"4-10":  1.03,
			"10+":   1.07,
		},

		SocialProof: map[types.ProofTier]float64{
			types.ProofNone:   1.0,
			types.ProofWeak:   1.0,
			types.ProofMedium: 1.03,
			types.ProofStrong: 1.07,
		},

		Zone: map[string]float64{
			"province":     0.95,
			"grande_ville": 1.0,
			"paris_idf":    1.05,
			"remote":       1.0,
		},

		// Ascending by typical budget; the best-paying selected segment
		// dominates.
		Audience: map[string]float64{
			"independants":        0.92,
			"petits_business":     0.95,
			"influenceurs":        0.98,
			"pme":                 1.0,
			"startups":            1.03,
			"ecommerce":           1.06,
			"grandes_entreprises": 1.12,
		},

		ServiceValue: map[string]float64{
			"audit":                15,
			"strategie":            25,
			"creation_contenu":     30,
			"montage_video":        20,
			"publication":          10,
			"management":           20,
			"reporting":            10,
			"coaching":             30,
			"suivi":                20,
			"direction_artistique": 30,
			"pub":                  40,
			"copywriting":          25,
			"tunnel":               40,
		},

		CoreServices: []string{
			"strategie", "creation_contenu", "publication", "management", "reporting",
		},

		HoursMidpoint: map[string]float64{
			"5-10":  7.5,
			"10-15": 12.5,
			"15-20": 17.5,
			"20-30": 25,
			"30-40": 35,
			"40+":   45,
		},

		EntryBand:    types.MarketBand{Label: "Entrée de gamme", Min: 750, Max: 950},
		MidBand:      types.MarketBand{Label: "Moyenne marché", Min: 950, Max: 1200},
		PremiumBand:  types.MarketBand{Label: "Haut de marché", Min: 1300, Max: 1500},
		SpecificBand: types.MarketBand{Label: "Mission spécifique", Min: 300, Max: 600},
		PartialBand:  types.MarketBand{Label: "Offre partielle", Min: 450, Max: 800},

		AllowedExceptions: []string{
			"Montages vidéos + posts uniquement",
			"Création de contenu + calendrier éditorial (1 mois)",
			"Support ponctuel",
			"Mission ultra spécifique sans accompagnement",
		},

		Alerts: AlertTemplates{
			UnderValuation: types.Alert{
				Kind:    types.AlertWarning,
				Title:   "Sous-évaluation détectée",
				Message: "Ton prix est en dessous de ce que le marché pratique pour ton niveau d'expertise et ton offre. Tu mérites mieux !",
			},
			ObjectiveConfusion: types.Alert{
				Kind:    types.AlertInfo,
				Title:   "Confusion objectif / prix",
				Message: "Attention à ne pas confondre ton objectif de revenus mensuel avec le prix de ton offre. Ce sont deux choses différentes.",
			},
			PostureMismatch: types.Alert{
				Kind:    types.AlertWarning,
				Title:   "Décalage posture / ambition",
				Message: "Il y a un écart entre ton niveau d'expertise et le prix que tu souhaites pratiquer. Assure-toi d'être alignée.",
			},
			Overload: types.Alert{
				Kind:    types.AlertDanger,
				Title:   "Risque de surcharge mentale",
				Message: "Avec ce prix et ce nombre de clients, tu risques de te surcharger. Pense à ta santé et à la qualité de ton travail.",
			},
			CompleteBelowFloor: types.Alert{
				Kind:    types.AlertError,
				Title:   "Prix trop bas pour une offre complète",
				Message: "Une offre mensuelle transformationnelle complète ne peut JAMAIS être pricée en dessous de 750€. C'est une règle non négociable.",
			},
		},

		AnnouncementLeadIn: "Tu ne paies pas mes heures de travail, tu paies la transformation de ton business : %s",

		AnnouncementByTier: map[types.TransformationTier]string{
			types.TransformationLow:    "Tu ne paies pas mes heures, tu paies une présence professionnelle sur les réseaux qui te représente.",
			types.TransformationMedium: "Tu ne paies pas mes heures, tu paies le passage de l'invisibilité à une vraie présence qui attire tes clients idéaux.",
			types.TransformationHigh:   "Tu ne paies pas mes heures, tu paies la transformation complète de ta visibilité en ligne qui génère du CA et te libère du temps pour ta zone de génie.",
		},

		Strategies: []Strategy{
			{
				Label: "Très bas",
				Pros:  []string{"Facile à vendre", "Volume élevé"},
				Cons: []string{
					"Pas rentable",
					"Charge de travail très élevée pour peu de résultats",
					"Peu motivant",
					"Te décrédibilise",
					"Surcharge mentale",
				},
			},
			{
				Label: "Moyen (Idéal)",
				Pros:  []string{"Juste pour toi et ton client", "Rentabilité", "Durabilité"},
				Cons:  []string{"Moins compétitive"},
			},
			{
				Label: "Premium",
				Pros: []string{
					"Moins de clients à gérer",
					"Rentabilité",
					"Attractif pour une clientèle haut de gamme",
				},
				Cons: []string{
					"Pression sur la qualité",
					"Moins de clients",
					"Barrière psychologique",
					"Difficile à vendre au début",
				},
			},
		},

		Philosophy: []string{
			"Un prix trop bas ralentit ta progression",
			"Le bon prix est celui que tu peux annoncer sans t'excuser et avec lequel tu es ALIGNÉE",
			"Tu peux faire évoluer ton prix avec l'expérience",
			"Tu construis un business durable, pas juste un revenu court terme",
			"Tu vends une TRANSFORMATION, pas des heures ni des tâches",
			"L'argent est neutre et doit transmettre la valeur de ton travail",
		},

		ExperienceLabels: map[types.ExperienceTier]string{
			types.ExperienceBeginner:     "débutante",
			types.ExperienceIntermediate: "intermédiaire",
			types.ExperienceExpert:       "experte",
		},

		OfferTierLabels: map[types.OfferTier]string{
			types.OfferComplete: "complète (accompagnement 360°)",
			types.OfferPartial:  "partielle (plusieurs services clés)",
			types.OfferSpecific: "spécifique (mission ciblée)",
		},

		TransformationLabels: map[types.TransformationTier]string{
			types.TransformationLow:    "faible",
			types.TransformationMedium: "moyenne",
			types.TransformationHigh:   "forte",
		},
	}
}

// Clone deep-copies the tables so a tuning overlay can adjust values
// without touching the published defaults.
func (t *Tables) Clone() *Tables {
	c := *t

	c.BasePrices = cloneMap(t.BasePrices)
	c.Experience = cloneMap(t.Experience)
	c.Transformation = cloneMap(t.Transformation)
	c.PastClients = cloneMap(t.PastClients)
	c.SocialProof = cloneMap(t.SocialProof)
	c.Zone = cloneMap(t.Zone)
	c.Audience = cloneMap(t.Audience)
	c.ServiceValue = cloneMap(t.ServiceValue)
	c.HoursMidpoint = cloneMap(t.HoursMidpoint)
	c.AnnouncementByTier = cloneMap(t.AnnouncementByTier)
	c.ExperienceLabels = cloneMap(t.ExperienceLabels)
	c.OfferTierLabels = cloneMap(t.OfferTierLabels)
	c.TransformationLabels = cloneMap(t.TransformationLabels)

	c.CoreServices = append([]string(nil), t.CoreServices...)
	c.AllowedExceptions = append([]string(nil), t.AllowedExceptions...)
	c.Philosophy = append([]string(nil), t.Philosophy...)
	c.Strategies = append([]Strategy(nil), t.Strategies...)

	return &c
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
