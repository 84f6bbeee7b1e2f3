package core

// CompareMax is the largest value a compare register can hold. The
// timers count against it as their top, so a compare value of
// CompareMax yields a 100% duty cycle. It must match the 16-bit timer
// width of the surrounding hardware.
const CompareMax uint16 = 65535

// gammaTable maps an 8-bit brightness level to a 16-bit timer compare
// value. The human eye responds logarithmically to output power, so the
// values grow roughly exponentially to make equal steps in the 8-bit
// domain read as equal steps in perceived brightness. The data is the
// published reference table from [1], kept bit-for-bit so the output is
// visually identical to fixtures driven by the original values.
//
// The table doubles every 16 entries from index 127 upward
// (256, 512, ..., 32768) and ends at CompareMax.
//
// [1]: https://www.mikrocontroller.net/articles/LED-Fading
var gammaTable = [256]uint16{
	0, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3,
	3, 3, 3, 3, 4, 4, 4, 4, 4, 4, 5, 5,
	5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 8, 8,
	8, 9, 9, 10, 10, 10, 11, 11, 12, 12, 13, 13,
	14, 15, 15, 16, 17, 17, 18, 19, 20, 21, 22, 23,
	24, 25, 26, 27, 28, 29, 31, 32, 33, 35, 36, 38,
	40, 41, 43, 45, 47, 49, 52, 54, 56, 59, 61, 64,
	67, 70, 73, 76, 79, 83, 87, 91, 95, 99, 103, 108,
	112, 117, 123, 128, 134, 140, 146, 152, 159, 166, 173, 181,
	189, 197, 206, 215, 225, 235, 245, 256, 267, 279, 292, 304,
	318, 332, 347, 362, 378, 395, 412, 431, 450, 470, 490, 512,
	535, 558, 583, 609, 636, 664, 693, 724, 756, 790, 825, 861,
	899, 939, 981, 1024, 1069, 1117, 1166, 1218, 1272, 1328, 1387, 1448,
	1512, 1579, 1649, 1722, 1798, 1878, 1961, 2048, 2139, 2233, 2332, 2435,
	2543, 2656, 2773, 2896, 3025, 3158, 3298, 3444, 3597, 3756, 3922, 4096,
	4277, 4467, 4664, 4871, 5087, 5312, 5547, 5793, 6049, 6317, 6596, 6889,
	7194, 7512, 7845, 8192, 8555, 8933, 9329, 9742, 10173, 10624, 11094, 11585,
	12098, 12634, 13193, 13777, 14387, 15024, 15689, 16384, 17109, 17867, 18658, 19484,
	20346, 21247, 22188, 23170, 24196, 25267, 26386, 27554, 28774, 30048, 31378, 32768,
	34218, 35733, 37315, 38967, 40693, 42494, 44376, 46340, 48392, 50534, 52772, 55108,
	57548, 60096, 62757, 65535,
}

// GammaLookup returns the timer compare value for an 8-bit brightness
// level. It is total over its domain; every level has a precomputed
// entry and no interpolation happens at runtime.
func GammaLookup(level uint8) uint16 {
	return gammaTable[level]
}
