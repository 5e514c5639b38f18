package catalog

// ServiceTier identifies which of a product's per-unit rates applies to a
// cart line. The three tiers are mutually exclusive.
type ServiceTier string

const (
	ServiceTierIron        ServiceTier = "iron"
	ServiceTierWashAndIron ServiceTier = "washAndIron"
	ServiceTierDryClean    ServiceTier = "dryClean"
)

// IsValid checks if the tier is a known ServiceTier
func (t ServiceTier) IsValid() bool {
	switch t {
	case ServiceTierIron, ServiceTierWashAndIron, ServiceTierDryClean:
		return true
	}
	return false
}

// String returns the string representation of ServiceTier
func (t ServiceTier) String() string {
	return string(t)
}

// AllServiceTiers returns every valid service tier
func AllServiceTiers() []ServiceTier {
	return []ServiceTier{ServiceTierIron, ServiceTierWashAndIron, ServiceTierDryClean}
}
