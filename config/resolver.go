package config

// ResolverConfig tunes the entity resolver used when creating or updating
// applications. Thresholds are trigram similarity scores in [0,1]; lower
// values are more permissive.
type ResolverConfig struct {
	// CandidateThreshold is the minimum similarity for a fuzzy candidate-name
	// match to count as resolved.
	CandidateThreshold float64 `env:"RESOLVER_CANDIDATE_THRESHOLD" envDefault:"0.45"`

	// JobThreshold is the minimum averaged title+company similarity for a
	// fuzzy job match to count as resolved.
	JobThreshold float64 `env:"RESOLVER_JOB_THRESHOLD" envDefault:"0.50"`
}

// Sanitize clamps thresholds to the valid similarity range.
func (r *ResolverConfig) Sanitize() {
	r.CandidateThreshold = clampScore(r.CandidateThreshold, 0.45)
	r.JobThreshold = clampScore(r.JobThreshold, 0.50)
}

func clampScore(v, fallback float64) float64 {
	if v <= 0 || v > 1 {
		return fallback
	}
	return v
}
