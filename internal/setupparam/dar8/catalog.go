// Package dar8 defines the DAR8 setup-parameter variant: its field catalog,
// the request-record normalizer, and the calculation covering antibody
// reduction and drug-linker conjugation volumes.
package dar8

import "github.com/adcworks/adcsetup/internal/setupparam"

// Display groups, in the order the UI collaborator presents them.
const (
	GroupInputRequest      = "input_request"
	GroupInputUser         = "input_user"
	GroupOutputReduction   = "output_reduction"
	GroupOutputConjugation = "output_conjugation"
	GroupMeta              = "meta"
)

// GroupTitles maps display groups to documentation section headings.
var GroupTitles = map[string]string{
	GroupInputRequest:      "Inputs from request",
	GroupInputUser:         "Operator inputs",
	GroupOutputReduction:   "Antibody reduction setup",
	GroupOutputConjugation: "Antibody conjugation setup",
	GroupMeta:              "Metadata",
}

// Reaction status values the operator may report.
const (
	StatusClear       = "clear"
	StatusCloudy      = "cloudy"
	StatusPrecipitate = "precipitate"
)

var catalog = setupparam.MustCatalog("DAR8", []setupparam.FieldMeta{
	// --- inputs carried from the request record ---
	{
		Key:         "antibody_conc_mg_ml",
		DisplayName: "Antibody concentration",
		Unit:        "mg/mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceRequest,
		Group:       GroupInputRequest,
		Description: "Antibody stock concentration from the request.",
	},
	{
		Key:         "reaction_scale_mg",
		DisplayName: "Reaction scale",
		Unit:        "mg",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceRequest,
		Group:       GroupInputRequest,
		Description: "Amount of antibody committed to the reaction, from the request.",
	},
	{
		Key:         "mw_antibody_da",
		DisplayName: "MW of antibody",
		Unit:        "Da",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceRequest,
		Group:       GroupInputRequest,
		Description: "Antibody molecular weight from the request.",
	},
	{
		Key:         "dissolved_in",
		DisplayName: "Dissolved in",
		DataType:    setupparam.TypeString,
		Source:      setupparam.SourceRequest,
		Group:       GroupInputRequest,
		Description: "Organic solvent the drug-linker is dissolved in, from the request.",
	},
	{
		Key:         "lp_conc_str",
		DisplayName: "LP concentration (raw)",
		DataType:    setupparam.TypeString,
		Source:      setupparam.SourceRequest,
		Group:       GroupInputRequest,
		Description: "Drug-linker (LP) concentration exactly as written in the request, e.g. \"10 mM\".",
	},
	{
		Key:         "lp_conc_mm",
		DisplayName: "LP concentration (parsed)",
		Unit:        "mM",
		DataType:    setupparam.TypeOptionalFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupInputRequest,
		DependsOn:   []string{"lp_conc_str"},
		Description: "Numeric LP concentration parsed from the leading token of the raw string; absent when the string has no leading number.",
		FormulaText: "LP concentration (parsed) = leading numeric token of the raw string, \"10 mM\" -> 10.0.",
	},
	{
		Key:         "wbp_code",
		DisplayName: "WBP code",
		DataType:    setupparam.TypeString,
		Source:      setupparam.SourceRequest,
		Group:       GroupInputRequest,
		Description: "Project code from the request, used in the batch number.",
	},
	{
		Key:         "request_id",
		DisplayName: "Request ID",
		DataType:    setupparam.TypeString,
		Source:      setupparam.SourceRequest,
		Group:       GroupInputRequest,
		Description: "Request identifier, used in the batch number.",
	},

	// --- operator inputs ---
	{
		Key:         "tcep_eq",
		DisplayName: "TCEP equivalents",
		Unit:        "eq",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceUserInput,
		Group:       GroupInputUser,
		Description: "Molar equivalents of TCEP per antibody. Defaults to 8 when not entered.",
	},
	{
		Key:         "tcep_stock_mm",
		DisplayName: "TCEP stock",
		Unit:        "mM",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceUserInput,
		Group:       GroupInputUser,
		Description: "TCEP stock solution concentration. Defaults to 8 mM when not entered.",
	},
	{
		Key:         "conj_org_ratio_percent",
		DisplayName: "Conjugation organic solvent ratio",
		Unit:        "%",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceUserInput,
		Group:       GroupInputUser,
		Description: "Organic solvent volume fraction entered as a percentage, 0-100. Defaults to 0.",
		FormulaText: "ratio fraction = entered percentage / 100, e.g. 20 % -> 0.20.",
	},
	{
		Key:         "x_lp_per_ab",
		DisplayName: "x LP/Ab",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceUserInput,
		Group:       GroupInputUser,
		Description: "Drug-linker to antibody molar ratio. Defaults to 12 when not entered.",
	},
	{
		Key:         "add_additional_tcep_eq",
		DisplayName: "Additional TCEP (entered)",
		Unit:        "eq",
		DataType:    setupparam.TypeOptionalFloat,
		Source:      setupparam.SourceUserInput,
		Group:       GroupInputUser,
		Description: "Optional extra TCEP equivalents; only takes effect when the operator enters a value.",
	},
	{
		Key:         "add_additional_lp",
		DisplayName: "Additional LP (entered)",
		DataType:    setupparam.TypeOptionalFloat,
		Source:      setupparam.SourceUserInput,
		Group:       GroupInputUser,
		Description: "Optional extra LP amount; interpretation follows lab convention.",
	},
	{
		Key:         "additional_reaction_time_h",
		DisplayName: "Additional reaction time (entered)",
		Unit:        "h",
		DataType:    setupparam.TypeOptionalFloat,
		Source:      setupparam.SourceUserInput,
		Group:       GroupInputUser,
		Description: "Optional extra reaction time in hours.",
	},
	{
		Key:         "reaction_status",
		DisplayName: "Reaction status",
		DataType:    setupparam.TypeEnum,
		Source:      setupparam.SourceUserInput,
		Group:       GroupInputUser,
		Description: "Operator's visual assessment: clear, cloudy, or precipitate.",
	},

	// --- reduction outputs ---
	{
		Key:         "add_antibody_ml",
		DisplayName: "Add antibody",
		Unit:        "mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputReduction,
		Important:   true,
		DependsOn:   []string{"reaction_scale_mg", "antibody_conc_mg_ml"},
		Description: "Antibody stock volume to add.",
		FormulaText: "Add antibody (mL) = Reaction scale (mg) / Antibody concentration (mg/mL).",
	},
	{
		Key:         "add_tcep_ml",
		DisplayName: "Add TCEP",
		Unit:        "mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputReduction,
		Important:   true,
		DependsOn:   []string{"reaction_scale_mg", "mw_antibody_da", "tcep_eq", "tcep_stock_mm"},
		Description: "TCEP stock volume to add. The factor 1000 converts mM to µmol/mL.",
		FormulaText: "Add TCEP (mL) = Reaction scale (mg) / MW of antibody (Da) * TCEP eq / TCEP stock (mM) * 1000.",
	},
	{
		Key:         "add_buffer_ml",
		DisplayName: "Add buffer to adjust Ab conc.",
		Unit:        "mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputReduction,
		Important:   true,
		DependsOn:   []string{"antibody_conc_mg_ml", "reduction_total_volume_ml", "add_antibody_ml", "add_tcep_ml"},
		Description: "Buffer volume diluting a concentrated antibody stock down to the target reaction concentration.",
		FormulaText: "If Antibody concentration >= 11.5: Add buffer (mL) = Reduction total volume - Add antibody - Add TCEP - Reduction total volume * 0.01; otherwise 0.",
	},
	{
		Key:         "add_edta_ml",
		DisplayName: "Add 200 mM EDTA",
		Unit:        "mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputReduction,
		Important:   true,
		DependsOn:   []string{"add_antibody_ml", "add_tcep_ml", "add_buffer_ml"},
		Description: "200 mM EDTA volume, one percent of the combined reduction volumes.",
		FormulaText: "Add 200 mM EDTA (mL) = 0.01 * (Add antibody + Add TCEP + Add buffer).",
	},
	{
		Key:         "mab_conc_reduction_mg_ml",
		DisplayName: "mAb conc. in reaction",
		Unit:        "mg/mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputReduction,
		DependsOn:   []string{"antibody_conc_mg_ml", "add_antibody_ml", "add_edta_ml", "add_tcep_ml"},
		Description: "mAb concentration in the reduction mixture. Below the 11.5 mg/mL threshold the agreed lab convention sums the three component volumes even though the units differ; at or above it the reaction runs at a fixed 10 mg/mL.",
		FormulaText: "If Antibody concentration < 11.5: mAb conc. in reaction = Add antibody + Add 200 mM EDTA + Add TCEP; otherwise 10.0.",
	},
	{
		Key:         "reduction_total_volume_ml",
		DisplayName: "Reduction total volume",
		Unit:        "mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputReduction,
		DependsOn:   []string{"reaction_scale_mg", "mab_conc_reduction_mg_ml"},
		Description: "Total reduction reaction volume.",
		FormulaText: "Reduction total volume (mL) = Reaction scale (mg) / mAb conc. in reaction (mg/mL).",
	},
	{
		Key:         "reduction_reaction_temperature_c",
		DisplayName: "Reduction reaction temperature",
		Unit:        "°C",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceFixed,
		Group:       GroupOutputReduction,
		Description: "Fixed protocol temperature for the reduction step.",
		FormulaText: "Fixed: 22 °C.",
	},
	{
		Key:         "reduction_reaction_time_h",
		DisplayName: "Reduction reaction time",
		Unit:        "h",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceFixed,
		Group:       GroupOutputReduction,
		Description: "Fixed protocol duration for the reduction step.",
		FormulaText: "Fixed: 18 h.",
	},
	{
		Key:         "add_additional_tcep_ml",
		DisplayName: "Add additional TCEP",
		Unit:        "mL",
		DataType:    setupparam.TypeOptionalFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputReduction,
		DependsOn:   []string{"reaction_scale_mg", "mw_antibody_da", "add_additional_tcep_eq", "tcep_stock_mm"},
		Description: "Extra TCEP volume, computed only when the operator entered additional equivalents.",
		FormulaText: "Only when Additional TCEP (eq) is entered: Add additional TCEP (mL) = Reaction scale / MW of antibody * Additional TCEP (eq) / TCEP stock (mM) * 1000.",
	},

	// --- conjugation outputs ---
	{
		Key:         "conj_org_ratio_percent_out",
		DisplayName: "Conjugation organic solvent ratio (output)",
		Unit:        "%",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"conj_org_ratio_percent"},
		Description: "Operator-entered solvent fraction, repeated in the conjugation output group.",
		FormulaText: "Equals the entered Conjugation organic solvent ratio (%).",
	},
	{
		Key:         "conj_org_ratio_unit",
		DisplayName: "Organic solvent type",
		DataType:    setupparam.TypeString,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"dissolved_in"},
		Description: "Solvent the ratio refers to, copied from the request's Dissolved in field.",
		FormulaText: "Equals the request's Dissolved in value.",
	},
	{
		Key:         "x_lp_per_ab_out",
		DisplayName: "x LP/Ab (output)",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"x_lp_per_ab"},
		Description: "Operator-entered LP/Ab ratio, repeated in the conjugation output group.",
		FormulaText: "Equals the entered x LP/Ab.",
	},
	{
		Key:         "conj_total_volume_ml",
		DisplayName: "Conjugation total volume",
		Unit:        "mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"reduction_total_volume_ml", "conj_org_ratio_percent"},
		Description: "Total conjugation volume after topping up with organic solvent.",
		FormulaText: "Conjugation total volume (mL) = Reduction total volume (mL) / (1 - ratio fraction), ratio fraction = Conjugation organic solvent ratio (%) / 100.",
	},
	{
		Key:         "add_lp_stock_ml",
		DisplayName: "Add stock LP solution",
		Unit:        "mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"reaction_scale_mg", "mw_antibody_da", "x_lp_per_ab", "lp_conc_mm"},
		Description: "LP stock volume to add; absent when the LP concentration string cannot be parsed.",
		FormulaText: "Add stock LP solution (mL) = Reaction scale (mg) / MW of antibody (Da) * x LP/Ab / LP concentration (mM) * 1000.",
	},
	{
		Key:         "add_org_solvent_ml",
		DisplayName: "Add organic solvent to reaction",
		Unit:        "mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"conj_total_volume_ml", "conj_org_ratio_percent", "add_lp_stock_ml"},
		Description: "Extra organic solvent on top of what the LP stock already contributes.",
		FormulaText: "Add organic solvent (mL) = Conjugation total volume (mL) * ratio fraction - Add stock LP solution (mL).",
	},
	{
		Key:         "conj_conc_mg_ml",
		DisplayName: "Conjugation concentration",
		Unit:        "mg/mL",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"reaction_scale_mg", "conj_total_volume_ml"},
		Description: "mAb concentration in the conjugation mixture.",
		FormulaText: "Conjugation concentration (mg/mL) = Reaction scale (mg) / Conjugation total volume (mL).",
	},
	{
		Key:         "conj_reaction_temperature_c",
		DisplayName: "Conjugation reaction temperature",
		Unit:        "°C",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceFixed,
		Group:       GroupOutputConjugation,
		Description: "Fixed protocol temperature for the conjugation step.",
		FormulaText: "Fixed: 22 °C.",
	},
	{
		Key:         "conj_reaction_time_h",
		DisplayName: "Conjugation reaction time",
		Unit:        "h",
		DataType:    setupparam.TypeFloat,
		Source:      setupparam.SourceFixed,
		Group:       GroupOutputConjugation,
		Description: "Fixed protocol duration for the conjugation step.",
		FormulaText: "Fixed: 18 h.",
	},
	{
		Key:         "add_additional_lp_out",
		DisplayName: "Additional LP (output)",
		DataType:    setupparam.TypeOptionalFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"add_additional_lp"},
		Description: "Copies the operator's extra LP amount when entered, absent otherwise.",
		FormulaText: "Additional LP (output) = Additional LP (entered), when present.",
	},
	{
		Key:         "additional_reaction_time_h_out",
		DisplayName: "Additional reaction time (output)",
		Unit:        "h",
		DataType:    setupparam.TypeOptionalFloat,
		Source:      setupparam.SourceDerived,
		Group:       GroupOutputConjugation,
		DependsOn:   []string{"additional_reaction_time_h"},
		Description: "Copies the operator's extra reaction time when entered, absent otherwise.",
		FormulaText: "Additional reaction time (output) = Additional reaction time (entered), when present.",
	},

	// --- metadata ---
	{
		Key:         "batch_no",
		DisplayName: "Batch#",
		DataType:    setupparam.TypeString,
		Source:      setupparam.SourceDerived,
		Group:       GroupMeta,
		DependsOn:   []string{"wbp_code", "request_id"},
		Description: "Batch number stamped with the calculation date; the only field that reads the wall clock.",
		FormulaText: "Batch# = WBP code + \"-\" + current date (YYMMDD) + Request ID.",
	},
})

// Catalog returns the validated DAR8 field catalog. It is shared, read-only
// process-wide state.
func Catalog() *setupparam.Catalog { return catalog }

// Definition returns the DAR8 entry for a setupparam.TypeRegistry.
func Definition() setupparam.Definition {
	return setupparam.Definition{Catalog: catalog, Calculate: Calculate, GroupTitles: GroupTitles}
}
