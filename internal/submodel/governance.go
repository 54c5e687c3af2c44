package submodel

import (
	"math"

	"energy-outlook/internal/config"
	"energy-outlook/internal/model"
)

// Implementation-capacity assumption for regulatory strengthening; a richer
// institutional model would derive this from staffing and budget data.
const regulatorImplementationCapacity = 0.6

// Default annual regulatory strengthening applied when the reform agenda does
// not specify one.
const defaultRegulatoryStrengthening = 0.02

// Governance models institutional quality: unbundling progress, regulatory
// effectiveness, planning adherence, and the private-sector-participation
// environment. Scores evolve year over year.
type Governance struct {
	params config.GovernanceParams

	regulatoryEffectiveness float64
	planningAdherence       float64
	pppClarity              float64
	irpAdopted              bool
}

type GovernanceResult struct {
	UnbundlingScore         float64 `json:"unbundling_score"`
	RegulatoryEffectiveness float64 `json:"regulatory_effectiveness_score"`
	IRPAdopted              bool    `json:"irp_adopted"`
	PlanningAdherence       float64 `json:"planning_adherence_score"`
	FrameworkClarity        float64 `json:"framework_clarity_score"`
	PSPEnvironmentScore     float64 `json:"psp_environment_score"`
	OverallScore            float64 `json:"overall_governance_score"`
}

func NewGovernance(params config.GovernanceParams) *Governance {
	adherence := 0.5
	if params.Planning.IRPAdopted {
		adherence = 0.7
	}
	return &Governance{
		params:                  params,
		regulatoryEffectiveness: defaultIfZero(params.Regulatory.CapacityScore, 0.5),
		planningAdherence:       adherence,
		pppClarity:              defaultIfZero(params.PPPFramework.ClarityScore, 0.6),
		irpAdopted:              params.Planning.IRPAdopted,
	}
}

// Simulate advances the governance scores one year under the given reform
// agenda. The PSP environment score is the product of PPP framework clarity
// and investor confidence; the finance model consumes it as the investment
// climate.
func (g *Governance) Simulate(year int, reform model.ReformAgenda, external model.ExternalFactors) GovernanceResult {
	unbundling := map[string]float64{
		"partial":    0.5,
		"functional": 0.7,
		"structural": 0.9,
	}[g.params.UnbundlingLevel]
	if unbundling == 0 {
		unbundling = 0.5
	}
	if reform.UnbundlingPush {
		unbundling = math.Min(1.0, unbundling+0.05)
	}

	strengthening := defaultIfZero(reform.RegulatoryStrengthening, defaultRegulatoryStrengthening)
	g.regulatoryEffectiveness = math.Min(1.0,
		g.regulatoryEffectiveness+strengthening*regulatorImplementationCapacity)

	if reform.AdoptIRP {
		g.irpAdopted = true
	}
	adherenceGain := 0.01
	if g.irpAdopted && external.DataAvailabilityScore > 0.6 {
		adherenceGain = 0.03
	}
	g.planningAdherence = math.Min(1.0, g.planningAdherence+adherenceGain)

	if reform.ImprovePPPRules {
		g.pppClarity = math.Min(1.0, g.pppClarity+0.05)
	}
	psp := g.pppClarity * external.InvestorConfidence

	return GovernanceResult{
		UnbundlingScore:         unbundling,
		RegulatoryEffectiveness: g.regulatoryEffectiveness,
		IRPAdopted:              g.irpAdopted,
		PlanningAdherence:       g.planningAdherence,
		FrameworkClarity:        g.pppClarity,
		PSPEnvironmentScore:     psp,
		OverallScore: (unbundling + g.regulatoryEffectiveness +
			g.planningAdherence + psp) / 4,
	}
}
