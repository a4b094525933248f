package checker

import "domaincheck/pkg/domain"

// Combinations returns the full candidate set from crossing every base string
// with every TLD, in base-major order: all TLDs of the first base, then all
// TLDs of the second, and so on. Duplicate inputs yield duplicate candidates;
// the function never inspects or normalizes its inputs. An empty base list or
// an empty TLD list yields an empty set.
func Combinations(baseStrings, tlds []string) []domain.Candidate {
	if len(baseStrings) == 0 || len(tlds) == 0 {
		return nil
	}

	candidates := make([]domain.Candidate, 0, len(baseStrings)*len(tlds))
	for _, base := range baseStrings {
		for _, tld := range tlds {
			candidates = append(candidates, domain.Candidate{
				Name: base + "." + tld,
				Base: base,
			})
		}
	}

	return candidates
}
