package employee

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ContractType is the full-time/part-time tag inferred from the
// free-text contract field on the employee record.
type ContractType string

const (
	ContractFullTime ContractType = "full_time"
	ContractPartTime ContractType = "part_time"
	ContractUnknown  ContractType = "unknown"
)

type Employee struct {
	Code            string
	Name            string
	Active          bool
	ContractText    string
	ContractedHours decimal.Decimal
	WorkCenter      string
	Group           string
	WorksHolidays   bool
}

// ContractType infers the contract tag from the free-text contract
// field. The source data never stores a clean enum, only labels like
// "Tiempo parcial 20h" or "Jornada completa".
func (e Employee) ContractType() ContractType {
	text := strings.ToLower(strings.TrimSpace(e.ContractText))
	if text == "" {
		return ContractUnknown
	}
	if strings.Contains(text, "parcial") {
		return ContractPartTime
	}
	return ContractFullTime
}
