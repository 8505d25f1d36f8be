package scenario

import (
	"embed"

	"epgs/internal/domain"
)

//go:embed testdata/*.json
var fixturesFS embed.FS

// MandatoryScenarioIDs are the five scenarios every determinism-proof
// run exercises, in canonical reporting order.
var MandatoryScenarioIDs = []string{
	"S-STABLE-SAFE",
	"S-FAST-NOTREADY",
	"S-CAUTION-ASSIST",
	"S-MIDSTOP-DEGRADE",
	"S-NRRP-TERMINATE",
}

// LoadFixture decodes one of the embedded mandatory scenario fixtures
// by scenario ID.
func LoadFixture(scenarioID string) (domain.Scenario, error) {
	raw, err := fixturesFS.ReadFile("testdata/" + scenarioID + ".json")
	if err != nil {
		return domain.Scenario{}, err
	}
	return Decode(raw)
}
