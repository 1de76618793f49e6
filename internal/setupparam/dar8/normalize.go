package dar8

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adcworks/adcsetup/internal/setupparam"
)

// External request-record field names, as documented for the upstream system.
const (
	reqAntibodyConc  = "Antibody concentration (mg/mL)"
	reqReactionScale = "Reaction Scale (mg)"
	reqMWAntibody    = "MW of antibody (Da)"
	reqDissolvedIn   = "Dissolved in"
	reqLPConc        = "LP concentration"
	reqWBPCode       = "WBP Code"
	reqID            = "ID"
)

// NormalizeRequest extracts the DAR8 inputs from a raw request record, keyed
// by external names, into internal catalog keys with type coercion. Numeric
// coercion fails soft: unparseable values become absent, never errors.
// Cross-field formulas do not belong here; the only derivation performed is
// parsing the leading numeric token out of the LP concentration string.
func NormalizeRequest(raw map[string]any) map[string]any {
	out := make(map[string]any, 8)

	out["antibody_conc_mg_ml"] = setupparam.EnsureFloat(raw[reqAntibodyConc])
	out["reaction_scale_mg"] = setupparam.EnsureFloat(raw[reqReactionScale])
	out["mw_antibody_da"] = setupparam.EnsureFloat(raw[reqMWAntibody])
	out["dissolved_in"] = stringOrEmpty(raw[reqDissolvedIn])

	lpRaw := raw[reqLPConc]
	out["lp_conc_str"] = stringOrEmpty(lpRaw)
	out["lp_conc_mm"] = setupparam.ParseLeadingNumber(lpRaw)

	out["wbp_code"] = stringOrEmpty(raw[reqWBPCode])
	out["request_id"] = requestID(raw[reqID])
	return out
}

func stringOrEmpty(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// requestID renders the request identifier the way the UI shows it: numeric
// IDs without a decimal part, everything else as a trimmed string.
func requestID(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatInt(int64(x), 10)
	case float32:
		return strconv.FormatInt(int64(x), 10)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}
