// Package sim provides simulation-side collaborators of the empirical
// modeling layer: process-wide defaults, a fake simulation generator for
// tests and demos, and a local cache of processed halo catalogs.
package sim

const (
	// DefaultRedshift is the redshift assumed for a composite model none of
	// whose components carry one.
	DefaultRedshift = 0.0

	// DefaultHalopropKey is the halo-catalog column conventionally used as
	// the primary halo property.
	DefaultHalopropKey = "halo_mvir"
)
