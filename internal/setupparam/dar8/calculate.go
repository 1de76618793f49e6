package dar8

import (
	"github.com/adcworks/adcsetup/internal/setupparam"
)

// Protocol constants agreed with the conjugation lab.
const (
	// reductionConcThreshold splits the buffer-dilution branch: at or above
	// this antibody concentration the reduction runs at a fixed target
	// concentration, below it no buffer is added.
	reductionConcThreshold = 11.5
	// targetReductionConc is the fixed mAb concentration used at or above
	// the threshold, in mg/mL.
	targetReductionConc = 10.0
	// edtaFraction is the EDTA volume share of the combined reduction volumes.
	edtaFraction = 0.01
	// Fixed temperatures and times for both reaction stages.
	reactionTemperatureC = 22.0
	reactionTimeH        = 18.0
)

// Operator input defaults applied when a value is missing or unparseable.
const (
	defaultTCEPEq      = 8.0
	defaultTCEPStockMM = 8.0
	defaultOrgRatioPct = 0.0
	defaultLPPerAb     = 12.0
)

// operatorValues holds the coerced operator inputs for one calculation.
type operatorValues struct {
	tcepEq              float64
	tcepStockMM         float64
	conjOrgRatioPercent float64
	xLPPerAb            float64
	addTCEPEq           *float64 // optional
	addLP               *float64 // optional
	addTimeH            *float64 // optional
	reactionStatus      string
}

func parseOperator(op map[string]any) operatorValues {
	v := operatorValues{
		tcepEq:              defaultTCEPEq,
		tcepStockMM:         defaultTCEPStockMM,
		conjOrgRatioPercent: defaultOrgRatioPct,
		xLPPerAb:            defaultLPPerAb,
	}
	if f := setupparam.EnsureFloat(op["tcep_eq"]); f != nil {
		v.tcepEq = *f
	}
	if f := setupparam.EnsureFloat(op["tcep_stock_mm"]); f != nil {
		v.tcepStockMM = *f
	}
	if f := setupparam.EnsureFloat(op["conj_org_ratio_percent"]); f != nil {
		v.conjOrgRatioPercent = *f
	}
	if f := setupparam.EnsureFloat(op["x_lp_per_ab"]); f != nil {
		v.xLPPerAb = *f
	}
	v.addTCEPEq = setupparam.EnsureFloat(op["add_additional_tcep_eq"])
	v.addLP = setupparam.EnsureFloat(op["add_additional_lp"])
	v.addTimeH = setupparam.EnsureFloat(op["additional_reaction_time_h"])
	v.reactionStatus = stringOrEmpty(op["reaction_status"])
	return v
}

// Calculate derives the full DAR8 setup-parameter set from a raw request
// record and the operator inputs. It is side-effect-free: every invocation
// re-evaluates all formulas, including the threshold branch, and returns an
// independently owned Result. Missing or unparseable numeric inputs propagate
// as absent values through every dependent field instead of failing.
func Calculate(in setupparam.Inputs) (*setupparam.Result, error) {
	req := NormalizeRequest(in.Request)
	op := parseOperator(in.Operator)

	res := setupparam.NewResult(catalog)
	var setErr error
	set := func(key string, v setupparam.Value) {
		if setErr == nil {
			setErr = res.Set(key, v)
		}
	}

	rs, _ := req["reaction_scale_mg"].(*float64)
	abConc, _ := req["antibody_conc_mg_ml"].(*float64)
	mwAb, _ := req["mw_antibody_da"].(*float64)
	lpConc, _ := req["lp_conc_mm"].(*float64)
	dissolvedIn, _ := req["dissolved_in"].(string)
	lpConcStr, _ := req["lp_conc_str"].(string)
	wbpCode, _ := req["wbp_code"].(string)
	requestID, _ := req["request_id"].(string)

	// direct carries: request fields and operator inputs shown verbatim
	set("antibody_conc_mg_ml", setupparam.Number(abConc))
	set("reaction_scale_mg", setupparam.Number(rs))
	set("mw_antibody_da", setupparam.Number(mwAb))
	set("dissolved_in", setupparam.Str(dissolvedIn))
	set("lp_conc_str", setupparam.Str(lpConcStr))
	set("lp_conc_mm", setupparam.Number(lpConc))
	set("wbp_code", setupparam.Str(wbpCode))
	set("request_id", setupparam.Str(requestID))
	set("tcep_eq", setupparam.Num(op.tcepEq))
	set("tcep_stock_mm", setupparam.Num(op.tcepStockMM))
	set("conj_org_ratio_percent", setupparam.Num(op.conjOrgRatioPercent))
	set("x_lp_per_ab", setupparam.Num(op.xLPPerAb))
	set("add_additional_tcep_eq", setupparam.Number(op.addTCEPEq))
	set("add_additional_lp", setupparam.Number(op.addLP))
	set("additional_reaction_time_h", setupparam.Number(op.addTimeH))
	set("reaction_status", setupparam.Str(op.reactionStatus))

	// primary reduction volumes
	addAntibody := setupparam.SafeDiv(rs, abConc)
	addTCEP := equivalentsVolume(rs, mwAb, setupparam.Float(op.tcepEq), setupparam.Float(op.tcepStockMM))
	set("add_antibody_ml", setupparam.Number(addAntibody))
	set("add_tcep_ml", setupparam.Number(addTCEP))

	// threshold branch: buffer dilution vs. summed-volume convention. The
	// branch is re-derived from the current antibody concentration on every
	// call; nothing is cached across invocations.
	var mabConc, addBuffer, addEDTA, reductionTotal *float64
	switch {
	case abConc == nil:
		// concentration unknown: the whole branch family stays absent

	case *abConc < reductionConcThreshold:
		addBuffer = setupparam.Float(0)
		addEDTA = scaledSum(edtaFraction, addAntibody, addTCEP, addBuffer)
		// Summing three volumes as a concentration is dimensionally odd but
		// is the convention the lab signed off on for dilute stocks.
		mabConc = setupparam.SafeSum(addAntibody, addEDTA, addTCEP)
		reductionTotal = setupparam.SafeDiv(rs, mabConc)

	default:
		mabConc = setupparam.Float(targetReductionConc)
		reductionTotal = setupparam.SafeDiv(rs, mabConc)
		if reductionTotal != nil && addAntibody != nil && addTCEP != nil {
			addBuffer = setupparam.Float(*reductionTotal - *addAntibody - *addTCEP - *reductionTotal*edtaFraction)
		}
		addEDTA = scaledSum(edtaFraction, addAntibody, addTCEP, addBuffer)
	}
	set("mab_conc_reduction_mg_ml", setupparam.Number(mabConc))
	set("reduction_total_volume_ml", setupparam.Number(reductionTotal))
	set("add_buffer_ml", setupparam.Number(addBuffer))
	set("add_edta_ml", setupparam.Number(addEDTA))

	set("reduction_reaction_temperature_c", setupparam.Num(reactionTemperatureC))
	set("reduction_reaction_time_h", setupparam.Num(reactionTimeH))

	// optional add-on: computed only when the operator entered equivalents
	var addExtraTCEP *float64
	if op.addTCEPEq != nil {
		addExtraTCEP = equivalentsVolume(rs, mwAb, op.addTCEPEq, setupparam.Float(op.tcepStockMM))
	}
	set("add_additional_tcep_ml", setupparam.Number(addExtraTCEP))

	// conjugation stage
	ratioFraction := op.conjOrgRatioPercent / 100.0
	set("conj_org_ratio_percent_out", setupparam.Num(op.conjOrgRatioPercent))
	set("conj_org_ratio_unit", setupparam.Str(dissolvedIn))
	set("x_lp_per_ab_out", setupparam.Num(op.xLPPerAb))

	conjTotal := setupparam.SafeDiv(reductionTotal, setupparam.Float(1.0-ratioFraction))
	set("conj_total_volume_ml", setupparam.Number(conjTotal))

	lpStock := equivalentsVolume(rs, mwAb, setupparam.Float(op.xLPPerAb), lpConc)
	set("add_lp_stock_ml", setupparam.Number(lpStock))

	var orgSolvent *float64
	if conjTotal != nil && lpStock != nil {
		orgSolvent = setupparam.Float(*conjTotal*ratioFraction - *lpStock)
	}
	set("add_org_solvent_ml", setupparam.Number(orgSolvent))

	set("conj_conc_mg_ml", setupparam.Number(setupparam.SafeDiv(rs, conjTotal)))
	set("conj_reaction_temperature_c", setupparam.Num(reactionTemperatureC))
	set("conj_reaction_time_h", setupparam.Num(reactionTimeH))

	// optional pass-through outputs
	set("add_additional_lp_out", setupparam.Number(op.addLP))
	set("additional_reaction_time_h_out", setupparam.Number(op.addTimeH))

	// batch number, the only field reading the wall clock
	batch := ""
	if wbpCode != "" || requestID != "" {
		batch = wbpCode + "-" + in.Clock()().Format("060102") + requestID
	}
	set("batch_no", setupparam.Str(batch))

	if setErr != nil {
		return nil, setErr
	}
	if err := res.Finalize(); err != nil {
		return nil, err
	}
	return res, nil
}

// equivalentsVolume computes scale / mw * eq / stock * 1000, the shared shape
// of every reagent-volume formula. The 1000 converts the mM stock so the
// result lands in mL.
func equivalentsVolume(scale, mw, eq, stock *float64) *float64 {
	v := setupparam.SafeDiv(scale, mw)
	v = setupparam.SafeMul(v, eq)
	v = setupparam.SafeDiv(v, stock)
	return setupparam.SafeMul(v, setupparam.Float(1000))
}

// scaledSum returns factor * (sum of vs), absent when any term is absent.
func scaledSum(factor float64, vs ...*float64) *float64 {
	return setupparam.SafeMul(setupparam.Float(factor), setupparam.SafeSum(vs...))
}
