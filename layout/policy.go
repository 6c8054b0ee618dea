package layout

// RowPolicy holds the thresholds that decide whether a fragment may
// join an existing row. The zero value is not useful; start from
// MedianPolicy or GeometricPolicy and adjust fields as needed.
type RowPolicy struct {
	// GroupingFactor scales the typical fragment height to produce
	// the mid-Y proximity threshold
	GroupingFactor float64

	// MinHeightFloor is the lower bound applied to the typical height
	// before thresholds are derived from it
	MinHeightFloor float64

	// Geometric enables the stricter membership gates below
	Geometric bool

	// MinHeightRatio is the minimum min/max ratio between a fragment's
	// height and the row's median height
	MinHeightRatio float64

	// MinOverlapRatio is the minimum vertical overlap with the row
	// bounds, as a fraction of the smaller height
	MinOverlapRatio float64

	// MaxCenterOffset caps the mid-Y distance, in typical heights,
	// accepted when the overlap requirement is not met
	MaxCenterOffset float64

	// StackedGrowthLimit caps the merged bounds height, in typical
	// heights, when the fragment horizontally overlaps the row
	StackedGrowthLimit float64

	// SkewedGrowthLimit caps the merged bounds height, in typical
	// heights, when the fragment is horizontally clear of the row
	SkewedGrowthLimit float64
}

// MedianPolicy returns the baseline policy. Membership is decided by
// mid-Y proximity alone, which suits line or paragraph granularity
// input.
func MedianPolicy() RowPolicy {
	return RowPolicy{
		GroupingFactor: 0.5,
		MinHeightFloor: 0.02,
	}
}

// GeometricPolicy returns the stricter policy for word granularity
// input. On top of mid-Y proximity it checks height compatibility,
// vertical overlap with the row, and growth of the merged bounds.
func GeometricPolicy() RowPolicy {
	return RowPolicy{
		GroupingFactor:     0.5,
		MinHeightFloor:     0.02,
		Geometric:          true,
		MinHeightRatio:     0.4,
		MinOverlapRatio:    0.5,
		MaxCenterOffset:    0.7,
		StackedGrowthLimit: 1.2,
		SkewedGrowthLimit:  2.0,
	}
}

// PolicyRegistry holds named row policies
type PolicyRegistry struct {
	policies map[string]RowPolicy
}

// NewPolicyRegistry creates a new empty registry
func NewPolicyRegistry() *PolicyRegistry {
	return &PolicyRegistry{
		policies: make(map[string]RowPolicy),
	}
}

// Register adds a policy under a name
func (r *PolicyRegistry) Register(name string, policy RowPolicy) {
	r.policies[name] = policy
}

// Get retrieves a policy by name
func (r *PolicyRegistry) Get(name string) (RowPolicy, bool) {
	policy, ok := r.policies[name]
	return policy, ok
}

// List returns all registered policy names
func (r *PolicyRegistry) List() []string {
	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewPolicyRegistry()

// RegisterPolicy registers a policy globally
func RegisterPolicy(name string, policy RowPolicy) {
	globalRegistry.Register(name, policy)
}

// GetPolicy retrieves a globally registered policy by name
func GetPolicy(name string) (RowPolicy, bool) {
	return globalRegistry.Get(name)
}

// ListPolicies returns all globally registered policy names
func ListPolicies() []string {
	return globalRegistry.List()
}

func init() {
	// Register default policies
	RegisterPolicy("median", MedianPolicy())
	RegisterPolicy("geometric", GeometricPolicy())
}
