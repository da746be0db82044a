// Package prebuilt registers the stock composite model recipes. Importing
// the package (typically for side effects) makes the recipes available to
// factory.NewPrebuilt under their nicknames.
package prebuilt

import (
	"github.com/eteq/halotools/empirical/component"
	"github.com/eteq/halotools/empirical/factory"
	"github.com/eteq/halotools/empirical/sfr"
	"github.com/eteq/halotools/empirical/smhm"
	"github.com/eteq/halotools/sim"
)

func init() {
	must(factory.RegisterPrebuilt("behroozi10", factory.Recipe(Behroozi10)))
	must(factory.RegisterPrebuilt("smhm_binary_sfr", factory.RecipeWithDirectives(SMHMBinarySFR)))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Behroozi10 is the simplest stock model: stellar mass from the
// Behroozi+10 stellar-to-halo-mass relation. Recognized keywords:
// "redshift" (float64).
func Behroozi10(kw factory.Keywords) (*component.Dictionary, error) {
	z := kw.Float64("redshift", sim.DefaultRedshift)

	features := component.NewDictionary()
	features.Set("stellar_mass", smhm.NewBehroozi10(smhm.WithRedshift(z)))
	return features, nil
}

// SMHMBinarySFR combines the Behroozi+10 stellar mass relation with a
// binary quiescent/star-forming designation. Recognized keywords:
// "redshift" and "quiescent_fraction" (float64). The recipe pins the
// feature order explicitly: stellar mass first, then the designation.
func SMHMBinarySFR(kw factory.Keywords) (*component.Dictionary, *factory.Supplementary, error) {
	z := kw.Float64("redshift", sim.DefaultRedshift)
	fq := kw.Float64("quiescent_fraction", 0.5)

	features := component.NewDictionary()
	features.Set("stellar_mass", smhm.NewBehroozi10(smhm.WithRedshift(z)))
	features.Set("sfr", sfr.NewBinaryGalprop(sfr.WithQuiescentFraction(fq)))

	supp := &factory.Supplementary{
		ModelFeatureCallingSequence: []string{"stellar_mass", "sfr"},
	}
	return features, supp, nil
}
