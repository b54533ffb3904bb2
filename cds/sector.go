package cds

import (
	"fmt"
	"strings"
)

// Sector is the industry classification of the reference entity.
type Sector int

const (
	SectorNone Sector = iota
	SectorBasicMaterials
	SectorConsumerGoods
	SectorConsumerServices
	SectorEnergy
	SectorFinancials
	SectorGovernment
	SectorHealthcare
	SectorIndustrials
	SectorTechnology
	SectorTelecommunicationServices
	SectorUtilities
)

var sectorNames = [...]string{
	SectorNone:                      "NONE",
	SectorBasicMaterials:            "BASICMATERIALS",
	SectorConsumerGoods:             "CONSUMERGOODS",
	SectorConsumerServices:          "CONSUMERSERVICES",
	SectorEnergy:                    "ENERGY",
	SectorFinancials:                "FINANCIALS",
	SectorGovernment:                "GOVERNMENT",
	SectorHealthcare:                "HEALTHCARE",
	SectorIndustrials:               "INDUSTRIALS",
	SectorTechnology:                "TECHNOLOGY",
	SectorTelecommunicationServices: "TELECOMMUNICATIONSERVICES",
	SectorUtilities:                 "UTILITIES",
}

func (s Sector) String() string {
	if s >= 0 && int(s) < len(sectorNames) {
		return sectorNames[s]
	}
	return fmt.Sprintf("Sector(%d)", int(s))
}

// ParseSector maps a sector name to a Sector. Empty input is SectorNone.
func ParseSector(name string) (Sector, error) {
	n := strings.ToUpper(strings.NewReplacer(" ", "", "_", "").Replace(strings.TrimSpace(name)))
	if n == "" {
		return SectorNone, nil
	}
	for i, s := range sectorNames {
		if s == n {
			return Sector(i), nil
		}
	}
	return SectorNone, fmt.Errorf("%w: unknown sector %q", ErrInvalidTerms, name)
}
