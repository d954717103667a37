// Package spectrum reconstructs frequency lines from entropy-decoded
// integers: scale factor decoding, requantization, joint-stereo
// processing, short-block reordering, alias reduction and the hybrid
// inverse transform with overlap-add.
package spectrum
