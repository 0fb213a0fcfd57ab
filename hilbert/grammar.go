package hilbert

// transform is the in-place adjustment applied to a child curve before the
// four quadrants are joined.
type transform uint8

const (
	trNone transform = iota
	trReverse
	trMirror
	trMirrorReverse
)

// child is one production entry: which family and orientation to build the
// quadrant with, and the transform applied to its finished point sequence.
type child struct {
	fam    Family
	orient Orientation
	tr     transform
}

// production holds the four children of one (family, orientation) pair in
// quadrant order: lower-left, upper-left, upper-right, lower-right.
type production [4]child

// joinOrder permutes the four quadrants (LL, UL, UR, LR) into traversal
// order for each parent orientation.
var joinOrder = [4][4]int{
	OrientA: {0, 1, 2, 3},
	OrientB: {0, 3, 2, 1},
	OrientC: {2, 3, 0, 1},
	OrientD: {2, 1, 0, 3},
}

// productions is the full 40-family curve grammar, one production per
// (family, orientation) pair. H0 is the primitive family and has no
// production: it is built by recursive quasi-square partition instead.
// The taxonomy follows E. Estevez-Rams et al., "Hilbert curves in two
// dimensions"; every production tiles the parent region exactly, and the
// four child areas always sum to the parent area.
var productions = [numFamilies][4]production{
	H1: {
		OrientA: {{H0, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H0, OrientB, trReverse}},
		OrientB: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
	},
	H2: {
		OrientA: {{H0, OrientC, trNone}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H0, OrientC, trNone}},
		OrientB: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
	},
	H3: {
		OrientA: {{H0, OrientC, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H0, OrientC, trReverse}},
		OrientB: {{H0, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H0, OrientA, trReverse}, {H0, OrientA, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H0, OrientB, trReverse}, {H0, OrientB, trReverse}},
	},
	H4: {
		OrientA: {{H0, OrientB, trNone}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H0, OrientC, trNone}},
		OrientB: {{H0, OrientA, trNone}, {H0, OrientD, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H0, OrientA, trNone}, {H0, OrientD, trNone}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H0, OrientC, trNone}, {H0, OrientB, trNone}},
	},
	H5: {
		OrientA: {{H0, OrientC, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H0, OrientB, trReverse}},
		OrientB: {{H0, OrientD, trReverse}, {H0, OrientA, trReverse}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientA, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H0, OrientB, trReverse}, {H0, OrientC, trReverse}},
	},
	H6: {
		OrientA: {{H5, OrientC, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientB: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
	},
	H7: {
		OrientA: {{H5, OrientC, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H5, OrientD, trNone}},
		OrientB: {{H5, OrientA, trMirrorReverse}, {H5, OrientD, trMirrorReverse}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H5, OrientB, trNone}, {H5, OrientA, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientC, trMirrorReverse}, {H5, OrientB, trMirrorReverse}},
	},
	H8: {
		OrientA: {{H5, OrientB, trMirrorReverse}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H5, OrientD, trNone}},
		OrientB: {{H5, OrientA, trMirrorReverse}, {H5, OrientC, trNone}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H5, OrientB, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientC, trMirrorReverse}, {H5, OrientA, trNone}},
	},
	H9: {
		OrientA: {{H5, OrientD, trReverse}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientB: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
	},
	H10: {
		OrientA: {{H5, OrientC, trMirror}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H5, OrientC, trReverse}},
		OrientB: {{H5, OrientD, trMirror}, {H5, OrientD, trReverse}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H5, OrientA, trReverse}, {H5, OrientA, trMirror}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H5, OrientB, trMirror}, {H5, OrientB, trReverse}},
	},
	H11: {
		OrientA: {{H5, OrientC, trMirror}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientB: {{H5, OrientC, trReverse}, {H5, OrientD, trReverse}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H5, OrientD, trMirror}, {H5, OrientA, trMirror}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H5, OrientA, trReverse}, {H5, OrientB, trReverse}},
	},
	H12: {
		OrientA: {{H3, OrientB, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H3, OrientD, trNone}},
		OrientB: {{H3, OrientA, trNone}, {H3, OrientC, trNone}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H3, OrientB, trNone}, {H3, OrientD, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H3, OrientC, trNone}, {H3, OrientA, trNone}},
	},
	H13: {
		OrientA: {{H3, OrientD, trReverse}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H3, OrientB, trReverse}},
		OrientB: {{H3, OrientC, trReverse}, {H3, OrientA, trReverse}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H3, OrientD, trReverse}, {H3, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H3, OrientA, trReverse}, {H3, OrientC, trReverse}},
	},
	H14: {
		OrientA: {{H3, OrientB, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H5, OrientD, trNone}},
		OrientB: {{H5, OrientA, trMirrorReverse}, {H3, OrientC, trNone}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H5, OrientB, trNone}, {H3, OrientD, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientC, trMirrorReverse}, {H3, OrientA, trNone}},
	},
	H15: {
		OrientA: {{H3, OrientD, trReverse}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H5, OrientC, trReverse}},
		OrientB: {{H5, OrientD, trMirror}, {H3, OrientA, trReverse}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H5, OrientA, trReverse}, {H3, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H5, OrientB, trMirror}, {H3, OrientC, trReverse}},
	},
	H16: {
		OrientA: {{H3, OrientB, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientB: {{H5, OrientD, trNone}, {H3, OrientC, trNone}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H5, OrientA, trMirrorReverse}, {H3, OrientD, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientB, trNone}, {H3, OrientA, trNone}},
	},
	H17: {
		OrientA: {{H3, OrientD, trReverse}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientB: {{H5, OrientC, trReverse}, {H3, OrientA, trReverse}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H5, OrientD, trMirror}, {H3, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H5, OrientA, trReverse}, {H3, OrientC, trReverse}},
	},
	H18: {
		OrientA: {{H4, OrientB, trMirrorReverse}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H4, OrientD, trNone}},
		OrientB: {{H4, OrientA, trMirrorReverse}, {H4, OrientC, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H4, OrientB, trNone}, {H4, OrientD, trMirrorReverse}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H4, OrientC, trMirrorReverse}, {H4, OrientA, trNone}},
	},
	H19: {
		OrientA: {{H4, OrientC, trMirrorReverse}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H4, OrientC, trNone}},
		OrientB: {{H4, OrientD, trMirrorReverse}, {H4, OrientD, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H4, OrientA, trNone}, {H4, OrientA, trMirrorReverse}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H4, OrientB, trMirrorReverse}, {H4, OrientB, trNone}},
	},
	H20: {
		OrientA: {{H4, OrientB, trMirrorReverse}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H4, OrientC, trNone}},
		OrientB: {{H4, OrientD, trMirrorReverse}, {H4, OrientC, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H4, OrientA, trNone}, {H4, OrientD, trMirrorReverse}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H4, OrientB, trMirrorReverse}, {H4, OrientA, trNone}},
	},
	H21: {
		OrientA: {{H4, OrientC, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H4, OrientC, trMirror}},
		OrientB: {{H4, OrientD, trReverse}, {H4, OrientD, trMirror}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H4, OrientA, trMirror}, {H4, OrientA, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H4, OrientB, trReverse}, {H4, OrientB, trMirror}},
	},
	H22: {
		OrientA: {{H4, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H4, OrientB, trMirror}},
		OrientB: {{H4, OrientC, trReverse}, {H4, OrientA, trMirror}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H4, OrientD, trMirror}, {H4, OrientB, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H4, OrientA, trReverse}, {H4, OrientC, trMirror}},
	},
	H23: {
		OrientA: {{H4, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H4, OrientC, trMirror}},
		OrientB: {{H4, OrientD, trReverse}, {H4, OrientA, trMirror}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H4, OrientA, trMirror}, {H4, OrientB, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H4, OrientB, trReverse}, {H4, OrientC, trMirror}},
	},
	H24: {
		OrientA: {{H0, OrientC, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H4, OrientB, trMirror}},
		OrientB: {{H4, OrientC, trReverse}, {H0, OrientD, trReverse}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H4, OrientD, trMirror}, {H0, OrientA, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H4, OrientA, trReverse}, {H0, OrientB, trReverse}},
	},
	H25: {
		OrientA: {{H0, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H4, OrientC, trMirror}},
		OrientB: {{H4, OrientD, trReverse}, {H0, OrientA, trReverse}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H4, OrientA, trMirror}, {H0, OrientB, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H4, OrientB, trReverse}, {H0, OrientC, trReverse}},
	},
	H26: {
		OrientA: {{H0, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H4, OrientB, trMirror}},
		OrientB: {{H4, OrientC, trReverse}, {H0, OrientA, trReverse}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H4, OrientD, trMirror}, {H0, OrientB, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H4, OrientA, trReverse}, {H0, OrientC, trReverse}},
	},
	H27: {
		OrientA: {{H0, OrientC, trNone}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H4, OrientC, trNone}},
		OrientB: {{H4, OrientD, trMirrorReverse}, {H0, OrientD, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H4, OrientA, trNone}, {H0, OrientA, trNone}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H4, OrientB, trMirrorReverse}, {H0, OrientB, trNone}},
	},
	H28: {
		OrientA: {{H0, OrientC, trNone}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H4, OrientD, trNone}},
		OrientB: {{H4, OrientA, trMirrorReverse}, {H0, OrientD, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H4, OrientB, trNone}, {H0, OrientA, trNone}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H4, OrientC, trMirrorReverse}, {H0, OrientB, trNone}},
	},
	H29: {
		OrientA: {{H0, OrientB, trNone}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H4, OrientC, trNone}},
		OrientB: {{H4, OrientD, trMirrorReverse}, {H0, OrientD, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H4, OrientA, trNone}, {H0, OrientD, trNone}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H4, OrientB, trMirrorReverse}, {H0, OrientA, trNone}},
	},
	H30: {
		OrientA: {{H0, OrientB, trNone}, {H0, OrientA, trNone}, {H0, OrientA, trNone}, {H4, OrientD, trNone}},
		OrientB: {{H4, OrientA, trMirrorReverse}, {H0, OrientC, trNone}, {H0, OrientB, trNone}, {H0, OrientB, trNone}},
		OrientC: {{H0, OrientC, trNone}, {H4, OrientB, trNone}, {H0, OrientD, trNone}, {H0, OrientC, trNone}},
		OrientD: {{H0, OrientD, trNone}, {H0, OrientD, trNone}, {H4, OrientC, trMirrorReverse}, {H0, OrientA, trNone}},
	},
	H31: {
		OrientA: {{H0, OrientC, trReverse}, {H0, OrientD, trReverse}, {H0, OrientB, trReverse}, {H4, OrientC, trMirror}},
		OrientB: {{H4, OrientD, trReverse}, {H0, OrientD, trReverse}, {H0, OrientA, trReverse}, {H0, OrientC, trReverse}},
		OrientC: {{H0, OrientD, trReverse}, {H4, OrientA, trMirror}, {H0, OrientA, trReverse}, {H0, OrientB, trReverse}},
		OrientD: {{H0, OrientC, trReverse}, {H0, OrientA, trReverse}, {H4, OrientB, trReverse}, {H0, OrientB, trReverse}},
	},
	H32: {
		OrientA: {{H1, OrientC, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H1, OrientC, trNone}},
		OrientB: {{H1, OrientD, trNone}, {H1, OrientD, trNone}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H1, OrientA, trNone}, {H1, OrientA, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H1, OrientB, trNone}, {H1, OrientB, trNone}},
	},
	H33: {
		OrientA: {{H1, OrientC, trReverse}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H1, OrientC, trReverse}},
		OrientB: {{H1, OrientD, trReverse}, {H1, OrientD, trReverse}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H1, OrientA, trReverse}, {H1, OrientA, trReverse}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H1, OrientB, trReverse}, {H1, OrientB, trReverse}},
	},
	H34: {
		OrientA: {{H5, OrientC, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H1, OrientC, trNone}},
		OrientB: {{H1, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H1, OrientA, trNone}, {H5, OrientA, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H1, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
	},
	H35: {
		OrientA: {{H5, OrientD, trReverse}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H1, OrientC, trReverse}},
		OrientB: {{H1, OrientD, trReverse}, {H5, OrientA, trMirror}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H1, OrientA, trReverse}, {H5, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H1, OrientB, trReverse}, {H5, OrientC, trMirror}},
	},
	H36: {
		OrientA: {{H5, OrientB, trMirrorReverse}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H1, OrientC, trNone}},
		OrientB: {{H1, OrientD, trNone}, {H5, OrientC, trNone}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H1, OrientA, trNone}, {H5, OrientD, trMirrorReverse}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H1, OrientB, trNone}, {H5, OrientA, trNone}},
	},
	H37: {
		OrientA: {{H5, OrientC, trMirror}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H1, OrientC, trReverse}},
		OrientB: {{H1, OrientD, trReverse}, {H5, OrientD, trReverse}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H1, OrientA, trReverse}, {H5, OrientA, trMirror}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H1, OrientB, trReverse}, {H5, OrientB, trReverse}},
	},
	H38: {
		OrientA: {{H3, OrientB, trNone}, {H5, OrientA, trMirrorReverse}, {H5, OrientA, trNone}, {H1, OrientC, trNone}},
		OrientB: {{H1, OrientD, trNone}, {H3, OrientC, trNone}, {H5, OrientB, trNone}, {H5, OrientB, trMirrorReverse}},
		OrientC: {{H5, OrientC, trNone}, {H1, OrientA, trNone}, {H3, OrientD, trNone}, {H5, OrientC, trMirrorReverse}},
		OrientD: {{H5, OrientD, trNone}, {H5, OrientD, trMirrorReverse}, {H1, OrientB, trNone}, {H3, OrientA, trNone}},
	},
	H39: {
		OrientA: {{H3, OrientD, trReverse}, {H5, OrientD, trMirror}, {H5, OrientB, trReverse}, {H1, OrientC, trReverse}},
		OrientB: {{H1, OrientD, trReverse}, {H3, OrientA, trReverse}, {H5, OrientA, trReverse}, {H5, OrientC, trMirror}},
		OrientC: {{H5, OrientD, trReverse}, {H1, OrientA, trReverse}, {H3, OrientB, trReverse}, {H5, OrientB, trMirror}},
		OrientD: {{H5, OrientC, trReverse}, {H5, OrientA, trMirror}, {H1, OrientB, trReverse}, {H3, OrientC, trReverse}},
	},
}
