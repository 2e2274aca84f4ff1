package importer

import "github.com/cleared-dev/ofxparse/internal/model"

// References collects the Reference of every transaction in txns.
func References(txns []model.BankTransaction) map[string]struct{} {
	seen := make(map[string]struct{}, len(txns))
	for _, t := range txns {
		seen[t.Reference] = struct{}{}
	}
	return seen
}

// Deduplicate drops transactions whose Reference is already in seen, and
// repeats within txns. Kept references are added to seen.
func Deduplicate(txns []model.BankTransaction, seen map[string]struct{}) (fresh []model.BankTransaction, dropped int) {
	for _, t := range txns {
		if _, ok := seen[t.Reference]; ok {
			dropped++
			continue
		}
		seen[t.Reference] = struct{}{}
		fresh = append(fresh, t)
	}
	return fresh, dropped
}
