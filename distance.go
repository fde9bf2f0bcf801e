package dhash

import "math/bits"

// Distance returns the Hamming distance between two signatures, the number
// of gradient bits on which the two images disagree. The closer this number
// is to 0, the more similar the images are, with 0 being an exact signature
// match and 64 meaning every gradient bit differs.
func Distance(a, b Signature) int {
	return bits.OnesCount64(uint64(a ^ b))
}
