package models

import "obrail.europe.org/martdb"

// Country is the JSON shape of one country dimension row.
type Country struct {
	CountryCode     string `json:"country_code"`
	NameEN          string `json:"name_en,omitempty"`
	NameFR          string `json:"name_fr,omitempty"`
	ISO3Code        string `json:"iso3_code,omitempty"`
	EUMember        string `json:"eu_member,omitempty"`
	EFTAMember      string `json:"efta_member,omitempty"`
	CandidateMember string `json:"candidate_member,omitempty"`
}

func NewCountry(country martdb.Country) Country {
	return Country{
		CountryCode:     country.Code,
		NameEN:          country.NameEN,
		NameFR:          country.NameFR,
		ISO3Code:        country.ISO3Code,
		EUMember:        country.EUMember,
		EFTAMember:      country.EFTAMember,
		CandidateMember: country.CandidateMember,
	}
}

// Operator is the JSON shape of one operator dimension row.
type Operator struct {
	OperatorID      string `json:"operator_id"`
	OperatorName    string `json:"operator_name,omitempty"`
	OperatorCountry string `json:"operator_country,omitempty"`
	IsNightOperator bool   `json:"is_night_operator"`
}

func NewOperator(operator martdb.Operator) Operator {
	return Operator{
		OperatorID:      operator.ID,
		OperatorName:    operator.Name,
		OperatorCountry: operator.Country,
		IsNightOperator: operator.IsNightOperator,
	}
}
