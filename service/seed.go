package service

import "github.com/samridhisinghh987188/saas-contract-dashboard/model"

// defaultContracts returns the built-in mock portfolio used when no
// seed file is configured.
func defaultContracts() []model.ContractDetail {
	return []model.ContractDetail{
		{
			Contract: model.Contract{
				ID:      "c1",
				Name:    "MSA 2025",
				Parties: "Microsoft & ABC Corp",
				Expiry:  "2025-12-31",
				Status:  model.StatusActive,
				Risk:    model.RiskMedium,
			},
			Start: "2023-01-01",
			Clauses: []model.Clause{
				{Title: "Termination", Summary: "90 days notice period.", Confidence: 0.82},
				{Title: "Liability Cap", Summary: "12 months' fees limit.", Confidence: 0.87},
				{Title: "Data Protection", Summary: "GDPR compliance required.", Confidence: 0.91},
			},
			Insights: []model.Insight{
				{Risk: model.RiskHigh, Message: "Liability cap excludes data breach costs."},
				{Risk: model.RiskMedium, Message: "Renewal auto-renews unless cancelled 60 days before expiry."},
			},
			Evidence: []model.Evidence{
				{Source: "Section 12.2", Snippet: "Total liability limited to 12 months' fees.", Relevance: 0.91},
				{Source: "Section 8.1", Snippet: "Either party may terminate with 90 days written notice.", Relevance: 0.85},
			},
		},
		{
			Contract: model.Contract{
				ID:      "c2",
				Name:    "Network Services Agreement",
				Parties: "TelNet & ABC Corp",
				Expiry:  "2025-10-10",
				Status:  model.StatusRenewalDue,
				Risk:    model.RiskHigh,
			},
			Start: "2022-10-10",
			Clauses: []model.Clause{
				{Title: "Service Level Agreement", Summary: "99.9% uptime guarantee.", Confidence: 0.95},
				{Title: "Penalty Clause", Summary: "Service credits for downtime.", Confidence: 0.88},
			},
			Insights: []model.Insight{
				{Risk: model.RiskHigh, Message: "No force majeure clause for network outages."},
				{Risk: model.RiskHigh, Message: "Automatic renewal without price protection."},
			},
			Evidence: []model.Evidence{
				{Source: "Section 3.1", Snippet: "Provider guarantees 99.9% network availability.", Relevance: 0.93},
				{Source: "Section 15.0", Snippet: "Agreement renews automatically for successive 3-year terms.", Relevance: 0.89},
			},
		},
		{
			Contract: model.Contract{
				ID:      "c3",
				Name:    "Software License Agreement",
				Parties: "Adobe & ABC Corp",
				Expiry:  "2024-06-15",
				Status:  model.StatusExpired,
				Risk:    model.RiskLow,
			},
			Start: "2021-06-15",
			Clauses: []model.Clause{
				{Title: "License Grant", Summary: "Non-exclusive software license.", Confidence: 0.94},
				{Title: "Usage Restrictions", Summary: "Limited to 100 users maximum.", Confidence: 0.89},
			},
			Insights: []model.Insight{
				{Risk: model.RiskLow, Message: "Standard software license terms with minimal risk."},
				{Risk: model.RiskMedium, Message: "Contract has expired and needs renewal."},
			},
			Evidence: []model.Evidence{
				{Source: "Section 2.1", Snippet: "Adobe grants a non-exclusive license to use the software.", Relevance: 0.88},
				{Source: "Section 3.2", Snippet: "Usage limited to maximum of 100 concurrent users.", Relevance: 0.82},
			},
		},
	}
}
