package tables

import "fmt"

// LogDualisTableSize is the number of entries in the log-dualis table.
const LogDualisTableSize = 65

// logDualis contains ld(i) / 8 for i = 0..64.
// ld(0) is not defined; the entry holds -1.
var logDualis = [LogDualisTableSize]float32{
	-1.00000000000, // ld(0) undefined
	0.000000000000, // ld(1) / 8
	0.125000000000, // ld(2) / 8
	0.198120312590, // ld(3) / 8
	0.250000000000, // ld(4) / 8
	0.290241011861, // ld(5) / 8
	0.323120312590, // ld(6) / 8
	0.350919365257, // ld(7) / 8
	0.375000000000, // ld(8) / 8
	0.396240625180, // ld(9) / 8
	0.415241011861, // ld(10) / 8
	0.432428952330, // ld(11) / 8
	0.448120312590, // ld(12) / 8
	0.462554964768, // ld(13) / 8
	0.475919365257, // ld(14) / 8
	0.488361324451, // ld(15) / 8
	0.500000000000, // ld(16) / 8
	0.510932855156, // ld(17) / 8
	0.521240625180, // ld(18) / 8
	0.530990939180, // ld(19) / 8
	0.540241011861, // ld(20) / 8
	0.549039677847, // ld(21) / 8
	0.557428952330, // ld(22) / 8
	0.565445244507, // ld(23) / 8
	0.573120312590, // ld(24) / 8
	0.580482023722, // ld(25) / 8
	0.587554964768, // ld(26) / 8
	0.594360937770, // ld(27) / 8
	0.600919365257, // ld(28) / 8
	0.607247624391, // ld(29) / 8
	0.613361324451, // ld(30) / 8
	0.619274538798, // ld(31) / 8
	0.625000000000, // ld(32) / 8
	0.630549264920, // ld(33) / 8
	0.635932855156, // ld(34) / 8
	0.641160377118, // ld(35) / 8
	0.646240625180, // ld(36) / 8
	0.651181670704, // ld(37) / 8
	0.655990939180, // ld(38) / 8
	0.660675277358, // ld(39) / 8
	0.665241011861, // ld(40) / 8
	0.669694000577, // ld(41) / 8
	0.674039677847, // ld(42) / 8
	0.678283094338, // ld(43) / 8
	0.682428952330, // ld(44) / 8
	0.686481637041, // ld(45) / 8
	0.690445244507, // ld(46) / 8
	0.694323606460, // ld(47) / 8
	0.698120312590, // ld(48) / 8
	0.701838730514, // ld(49) / 8
	0.705482023722, // ld(50) / 8
	0.709053167746, // ld(51) / 8
	0.712554964768, // ld(52) / 8
	0.715990056820, // ld(53) / 8
	0.719360937770, // ld(54) / 8
	0.722669964191, // ld(55) / 8
	0.725919365257, // ld(56) / 8
	0.729111251771, // ld(57) / 8
	0.732247624391, // ld(58) / 8
	0.735330381170, // ld(59) / 8
	0.738361324451, // ld(60) / 8
	0.741342167195, // ld(61) / 8
	0.744274538798, // ld(62) / 8
	0.747159990437, // ld(63) / 8
	0.750000000000, // ld(64) / 8
}

// LogDualisDiv8 returns ld(i) / 8 by table lookup.
//
// The valid range for i is 1 to 64. For i = 0 the result is -1
// (ld(0) is undefined). Indices beyond the table panic.
//
// Ported from: log_dualis_div8() in media/libstagefright/omx/generic_source.c:121-136
func LogDualisDiv8(i uint32) float32 {
	if i >= LogDualisTableSize {
		panic(fmt.Sprintf("tables: log-dualis index %d out of range [0, %d]", i, LogDualisTableSize-1))
	}
	return logDualis[i]
}
