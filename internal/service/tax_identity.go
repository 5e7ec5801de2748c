package service

import (
	"fmt"
	"strings"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
)

// taxIdentity is the normalised GSTIN, PAN and state of a party.
type taxIdentity struct {
	GSTIN     string
	PAN       string
	StateCode string
	StateName string
}

// resolveTaxIdentity validates an optional GSTIN and derives the PAN and
// state from it. A PAN given alongside a GSTIN must match the one the
// GSTIN embeds; a state code given without a GSTIN must exist.
func resolveTaxIdentity(gstin, pan, stateCode string) (taxIdentity, error) {
	id := taxIdentity{
		PAN:       strings.ToUpper(strings.TrimSpace(pan)),
		StateCode: strings.TrimSpace(stateCode),
	}

	if strings.TrimSpace(gstin) != "" {
		result := gst.ValidateGSTIN(gstin)
		if !result.IsValid {
			return taxIdentity{}, fmt.Errorf("%w: %s", domain.ErrInvalidGSTIN, result.Error)
		}
		if id.PAN != "" && id.PAN != result.PANNumber {
			return taxIdentity{}, domain.ErrPANMismatch
		}
		id.GSTIN = gst.NormalizeGSTIN(gstin)
		id.PAN = result.PANNumber
		id.StateCode = result.StateCode
		id.StateName = result.StateName
		return id, nil
	}

	if id.StateCode != "" {
		state, ok := gst.LookupState(id.StateCode)
		if !ok {
			return taxIdentity{}, fmt.Errorf("%w: %q", domain.ErrInvalidStateCode, id.StateCode)
		}
		id.StateName = state.Name
	}
	return id, nil
}
