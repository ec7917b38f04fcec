package curriculum

import (
	"fmt"
	"strings"
)

// validateGalaxies performs all structural checks on the given galaxy list.
// Returns a combined error describing all problems found, or nil if valid.
func validateGalaxies(galaxies []Galaxy) error {
	var errs []string

	if len(galaxies) == 0 {
		errs = append(errs, "no galaxies defined")
	}

	idSet := make(map[string]bool)
	for i, gal := range galaxies {
		if len(gal.Modules) == 0 {
			errs = append(errs, fmt.Sprintf("galaxy %d has no modules", gal.ID))
		}
		if gal.Name == "" {
			errs = append(errs, fmt.Sprintf("galaxy %d has an empty name", gal.ID))
		}
		if i > 0 && gal.ID <= galaxies[i-1].ID {
			errs = append(errs, fmt.Sprintf("galaxy ids must be strictly increasing: %d follows %d", gal.ID, galaxies[i-1].ID))
		}

		for j, m := range gal.Modules {
			if m.ID == "" {
				errs = append(errs, fmt.Sprintf("galaxy %d module at position %d has an empty id", gal.ID, j))
				continue
			}
			if idSet[m.ID] {
				errs = append(errs, fmt.Sprintf("duplicate module id: %q", m.ID))
			}
			idSet[m.ID] = true

			if m.Title == "" {
				errs = append(errs, fmt.Sprintf("module %q has an empty title", m.ID))
			}
			if m.Ordinal != j {
				errs = append(errs, fmt.Sprintf("module %q has ordinal %d, want %d", m.ID, m.Ordinal, j))
			}
			if m.XPReward < 0 {
				errs = append(errs, fmt.Sprintf("module %q has negative XP reward %d", m.ID, m.XPReward))
			}
			if m.TokenReward < 0 {
				errs = append(errs, fmt.Sprintf("module %q has negative token reward %d", m.ID, m.TokenReward))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
