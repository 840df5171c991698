package deliverynote

import "strings"

const (
	// MaxOrderNumberDigits is the storage limit for a Bestellnummer.
	MaxOrderNumberDigits = 12

	// OrderNumberChunks is the number of two-digit segments a Bestellnummer
	// is split into. Each segment heads one quantity column on the document.
	OrderNumberChunks = 6

	orderNumberChunkSize = 2
)

// NormalizeOrderNumber strips every non-digit rune and truncates the result
// to the storage limit.
func NormalizeOrderNumber(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == MaxOrderNumberDigits {
			break
		}
	}
	return b.String()
}

// SplitOrderNumber partitions a Bestellnummer into six two-digit chunks.
// The input is normalized first, so callers may pass raw user text.
// Chunks past the end of the digit string are empty, and the last occupied
// chunk may hold a single digit: "356585" becomes ["35" "65" "85" "" "" ""].
func SplitOrderNumber(raw string) []string {
	digits := NormalizeOrderNumber(raw)
	chunks := make([]string, OrderNumberChunks)
	for i := 0; i < OrderNumberChunks; i++ {
		start := i * orderNumberChunkSize
		if start >= len(digits) {
			break
		}
		end := start + orderNumberChunkSize
		if end > len(digits) {
			end = len(digits)
		}
		chunks[i] = digits[start:end]
	}
	return chunks
}

// JoinOrderNumber reassembles chunk inputs into a normalized Bestellnummer.
// Each chunk is digit-filtered and truncated to two characters before
// concatenation, so joining the output of SplitOrderNumber is lossless.
func JoinOrderNumber(chunks []string) string {
	var b strings.Builder
	for _, chunk := range chunks {
		n := 0
		for _, r := range chunk {
			if r < '0' || r > '9' {
				continue
			}
			b.WriteRune(r)
			n++
			if n == orderNumberChunkSize {
				break
			}
		}
	}
	return NormalizeOrderNumber(b.String())
}
