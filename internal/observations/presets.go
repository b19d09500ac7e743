package observations

// presets is the fixed, ordered catalog of CIP/CDD audit observations
// offered for quick selection in the dashboard's observation dialog.
var presets = [10]string{
	"Customer identification records incomplete at account opening",
	"Identity verification not completed within the required timeframe",
	"Beneficial ownership information missing for legal entity customer",
	"Customer risk rating not assigned at onboarding",
	"Watch list screening not evidenced for new customer",
	"Enhanced due diligence not performed for high-risk customer",
	"Periodic review overdue per the stated review cadence",
	"Source of funds documentation insufficient for account activity",
	"Expected account activity not established at onboarding",
	"Customer file lacks approval sign-off required by procedures",
}

// Presets returns the preset observation catalog in display order.
func Presets() []string {
	out := make([]string, len(presets))
	copy(out, presets[:])
	return out
}

// IsPreset reports whether text matches one of the preset observations.
func IsPreset(text string) bool {
	for _, p := range presets {
		if p == text {
			return true
		}
	}
	return false
}
