package match

import (
	"strings"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// SimilarityThreshold is the minimum Jaccard score accepted by the
// similarity pass. Calibrated for short multi-token retail names: lower
// over-matches unrelated items, higher under-matches minor wording
// variance.
const SimilarityThreshold = 0.4

// Resolver matches raw order-row names against one catalog snapshot.
// Build one per batch; it precomputes canonical forms and token sets and
// never mutates the catalog.
type Resolver struct {
	entries []catalogEntry
}

type catalogEntry struct {
	name     string
	imageURL string
	canon    string
	tokens   []string
}

// NewResolver indexes a catalog snapshot for matching.
func NewResolver(catalog []domain.Product) *Resolver {
	entries := make([]catalogEntry, 0, len(catalog))
	for _, p := range catalog {
		canon := Canonicalize(p.Name)
		entries = append(entries, catalogEntry{
			name:     p.Name,
			imageURL: p.ImageURL,
			canon:    canon,
			tokens:   Tokenize(canon),
		})
	}
	return &Resolver{entries: entries}
}

// Resolve maps a raw (base, variation) name pair to a catalog product.
//
// Three candidate strings are built — base and variation fused, base
// alone, variation alone — which tolerates marketplaces that keep the
// distinguishing attribute in the variation field while the catalog fuses
// it into the product name, or vice versa. An exact canonical match on any
// candidate always wins; otherwise the best Jaccard score across all
// (candidate, entry) pairs is accepted at or above SimilarityThreshold;
// otherwise a substring / two-token-overlap fallback on the base candidate
// applies. When everything misses, the raw base name (or variation, if the
// base is empty) is returned as a synthetic unmatched identity so the row
// stays countable.
func (r *Resolver) Resolve(baseRaw, varRaw string) domain.MatchResult {
	cBase := Canonicalize(baseRaw)
	cVar := Canonicalize(varRaw)

	candidates := make([]string, 0, 3)
	if joined := strings.TrimSpace(cBase + " " + cVar); joined != "" {
		candidates = append(candidates, joined)
	}
	if cBase != "" {
		candidates = append(candidates, cBase)
	}
	if cVar != "" {
		candidates = append(candidates, cVar)
	}

	for _, cand := range candidates {
		for _, e := range r.entries {
			if e.canon == cand {
				return domain.MatchResult{
					ProductName: e.name,
					ImageURL:    e.imageURL,
					Confidence:  1,
					Tier:        domain.MatchExact,
				}
			}
		}
	}

	var (
		bestScore float64
		bestEntry *catalogEntry
	)
	for _, cand := range candidates {
		candTokens := Tokenize(cand)
		for i := range r.entries {
			if s := Jaccard(candTokens, r.entries[i].tokens); s > bestScore {
				bestScore = s
				bestEntry = &r.entries[i]
			}
		}
	}
	if bestEntry != nil && bestScore >= SimilarityThreshold {
		return domain.MatchResult{
			ProductName: bestEntry.name,
			ImageURL:    bestEntry.imageURL,
			Confidence:  bestScore,
			Tier:        domain.MatchSimilarity,
		}
	}

	if cBase != "" {
		baseTokens := Tokenize(cBase)
		for i := range r.entries {
			e := &r.entries[i]
			if strings.Contains(e.canon, cBase) || overlap(baseTokens, e.tokens) >= 2 {
				return domain.MatchResult{
					ProductName: e.name,
					ImageURL:    e.imageURL,
					Confidence:  Jaccard(baseTokens, e.tokens),
					Tier:        domain.MatchFallback,
				}
			}
		}
	}

	synthetic := baseRaw
	if strings.TrimSpace(synthetic) == "" {
		synthetic = varRaw
	}
	return domain.MatchResult{
		ProductName: synthetic,
		Tier:        domain.MatchUnmatched,
	}
}

// overlap counts distinct tokens present in both sets.
func overlap(a, b []string) int {
	sb := toSet(b)
	seen := make(map[string]struct{}, len(a))
	n := 0
	for _, t := range a {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := sb[t]; ok {
			n++
		}
	}
	return n
}
