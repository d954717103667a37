// Package synth implements the polyphase synthesis filterbank of
// ISO/IEC 11172-3 2.4.3.2: a 32-point transform into a 1024-sample
// rolling buffer followed by windowing with the Table 3-B.3 window.
package synth

// Filter holds the synthesis state for one channel.
type Filter struct {
	v   [1024]float32
	pos int
}

// Reset clears the rolling buffer, as after a seek.
func (f *Filter) Reset() {
	f.v = [1024]float32{}
	f.pos = 0
}

// Process consumes one subband sample per band and writes 32 PCM
// samples to out at the given stride. out must hold at least
// 31*stride+1 samples.
func (f *Filter) Process(in *[32]float32, out []float32, stride int) {
	f.pos = (f.pos - 64) & 1023
	dct32(in, &f.v, f.pos)

	var u [32]float32
	dIndex := 512 - (f.pos >> 1)
	vIndex := (f.pos % 128) >> 1
	for vIndex < 1024 {
		for i := 0; i < 32; i++ {
			u[i] += d[dIndex] * f.v[vIndex]
			dIndex++
			vIndex++
		}
		vIndex += 128 - 32
		dIndex += 64 - 32
	}

	dIndex -= 512 - 32
	vIndex = (128 - 32 + 1024) - vIndex
	for vIndex < 1024 {
		for i := 0; i < 32; i++ {
			u[i] += d[dIndex] * f.v[vIndex]
			dIndex++
			vIndex++
		}
		vIndex += 128 - 32
		dIndex += 64 - 32
	}

	for j := 0; j < 32; j++ {
		out[j*stride] = u[j]
	}
}

// dct32 is an unrolled 32-point transform writing 64 values into the
// rolling buffer at dp.
func dct32(in *[32]float32, v *[1024]float32, dp int) {
	var t01, t02, t03, t04, t05, t06, t07, t08, t09, t10, t11, t12,
		t13, t14, t15, t16, t17, t18, t19, t20, t21, t22, t23, t24,
		t25, t26, t27, t28, t29, t30, t31, t32, t33 float32

	t01 = in[0] + in[31]
	t02 = (in[0] - in[31]) * 0.500602998235
	t03 = in[1] + in[30]
	t04 = (in[1] - in[30]) * 0.505470959898
	t05 = in[2] + in[29]
	t06 = (in[2] - in[29]) * 0.515447309923
	t07 = in[3] + in[28]
	t08 = (in[3] - in[28]) * 0.53104259109
	t09 = in[4] + in[27]
	t10 = (in[4] - in[27]) * 0.553103896034
	t11 = in[5] + in[26]
	t12 = (in[5] - in[26]) * 0.582934968206
	t13 = in[6] + in[25]
	t14 = (in[6] - in[25]) * 0.622504123036
	t15 = in[7] + in[24]
	t16 = (in[7] - in[24]) * 0.674808341455
	t17 = in[8] + in[23]
	t18 = (in[8] - in[23]) * 0.744536271002
	t19 = in[9] + in[22]
	t20 = (in[9] - in[22]) * 0.839349645416
	t21 = in[10] + in[21]
	t22 = (in[10] - in[21]) * 0.972568237862
	t23 = in[11] + in[20]
	t24 = (in[11] - in[20]) * 1.16943993343
	t25 = in[12] + in[19]
	t26 = (in[12] - in[19]) * 1.48416461631
	t27 = in[13] + in[18]
	t28 = (in[13] - in[18]) * 2.05778100995
	t29 = in[14] + in[17]
	t30 = (in[14] - in[17]) * 3.40760841847
	t31 = in[15] + in[16]
	t32 = (in[15] - in[16]) * 10.1900081235

	t33 = t01 + t31
	t31 = (t01 - t31) * 0.502419286188
	t01 = t03 + t29
	t29 = (t03 - t29) * 0.52249861494
	t03 = t05 + t27
	t27 = (t05 - t27) * 0.566944034816
	t05 = t07 + t25
	t25 = (t07 - t25) * 0.64682178336
	t07 = t09 + t23
	t23 = (t09 - t23) * 0.788154623451
	t09 = t11 + t21
	t21 = (t11 - t21) * 1.06067768599
	t11 = t13 + t19
	t19 = (t13 - t19) * 1.72244709824
	t13 = t15 + t17
	t17 = (t15 - t17) * 5.10114861869
	t15 = t33 + t13
	t13 = (t33 - t13) * 0.509795579104
	t33 = t01 + t11
	t01 = (t01 - t11) * 0.601344886935
	t11 = t03 + t09
	t09 = (t03 - t09) * 0.899976223136
	t03 = t05 + t07
	t07 = (t05 - t07) * 2.56291544774
	t05 = t15 + t03
	t15 = (t15 - t03) * 0.541196100146
	t03 = t33 + t11
	t11 = (t33 - t11) * 1.30656296488
	t33 = t05 + t03
	t05 = (t05 - t03) * 0.707106781187
	t03 = t15 + t11
	t15 = (t15 - t11) * 0.707106781187
	t03 += t15
	t11 = t13 + t07
	t13 = (t13 - t07) * 0.541196100146
	t07 = t01 + t09
	t09 = (t01 - t09) * 1.30656296488
	t01 = t11 + t07
	t07 = (t11 - t07) * 0.707106781187
	t11 = t13 + t09
	t13 = (t13 - t09) * 0.707106781187
	t11 += t13
	t01 += t11
	t11 += t07
	t07 += t13
	t09 = t31 + t17
	t31 = (t31 - t17) * 0.509795579104
	t17 = t29 + t19
	t29 = (t29 - t19) * 0.601344886935
	t19 = t27 + t21
	t21 = (t27 - t21) * 0.899976223136
	t27 = t25 + t23
	t23 = (t25 - t23) * 2.56291544774
	t25 = t09 + t27
	t09 = (t09 - t27) * 0.541196100146
	t27 = t17 + t19
	t19 = (t17 - t19) * 1.30656296488
	t17 = t25 + t27
	t27 = (t25 - t27) * 0.707106781187
	t25 = t09 + t19
	t19 = (t09 - t19) * 0.707106781187
	t25 += t19
	t09 = t31 + t23
	t31 = (t31 - t23) * 0.541196100146
	t23 = t29 + t21
	t21 = (t29 - t21) * 1.30656296488
	t29 = t09 + t23
	t23 = (t09 - t23) * 0.707106781187
	t09 = t31 + t21
	t31 = (t31 - t21) * 0.707106781187
	t09 += t31
	t29 += t09
	t09 += t23
	t23 += t31
	t17 += t29
	t29 += t25
	t25 += t09
	t09 += t27
	t27 += t23
	t23 += t19
	t19 += t31
	t21 = t02 + t32
	t02 = (t02 - t32) * 0.502419286188
	t32 = t04 + t30
	t04 = (t04 - t30) * 0.52249861494
	t30 = t06 + t28
	t28 = (t06 - t28) * 0.566944034816
	t06 = t08 + t26
	t08 = (t08 - t26) * 0.64682178336
	t26 = t10 + t24
	t10 = (t10 - t24) * 0.788154623451
	t24 = t12 + t22
	t22 = (t12 - t22) * 1.06067768599
	t12 = t14 + t20
	t20 = (t14 - t20) * 1.72244709824
	t14 = t16 + t18
	t16 = (t16 - t18) * 5.10114861869
	t18 = t21 + t14
	t14 = (t21 - t14) * 0.509795579104
	t21 = t32 + t12
	t32 = (t32 - t12) * 0.601344886935
	t12 = t30 + t24
	t24 = (t30 - t24) * 0.899976223136
	t30 = t06 + t26
	t26 = (t06 - t26) * 2.56291544774
	t06 = t18 + t30
	t18 = (t18 - t30) * 0.541196100146
	t30 = t21 + t12
	t12 = (t21 - t12) * 1.30656296488
	t21 = t06 + t30
	t30 = (t06 - t30) * 0.707106781187
	t06 = t18 + t12
	t12 = (t18 - t12) * 0.707106781187
	t06 += t12
	t18 = t14 + t26
	t26 = (t14 - t26) * 0.541196100146
	t14 = t32 + t24
	t24 = (t32 - t24) * 1.30656296488
	t32 = t18 + t14
	t14 = (t18 - t14) * 0.707106781187
	t18 = t26 + t24
	t24 = (t26 - t24) * 0.707106781187
	t18 += t24
	t32 += t18
	t18 += t14
	t26 = t14 + t24
	t14 = t02 + t16
	t02 = (t02 - t16) * 0.509795579104
	t16 = t04 + t20
	t04 = (t04 - t20) * 0.601344886935
	t20 = t28 + t22
	t22 = (t28 - t22) * 0.899976223136
	t28 = t08 + t10
	t10 = (t08 - t10) * 2.56291544774
	t08 = t14 + t28
	t14 = (t14 - t28) * 0.541196100146
	t28 = t16 + t20
	t20 = (t16 - t20) * 1.30656296488
	t16 = t08 + t28
	t28 = (t08 - t28) * 0.707106781187
	t08 = t14 + t20
	t20 = (t14 - t20) * 0.707106781187
	t08 += t20
	t14 = t02 + t10
	t02 = (t02 - t10) * 0.541196100146
	t10 = t04 + t22
	t22 = (t04 - t22) * 1.30656296488
	t04 = t14 + t10
	t10 = (t14 - t10) * 0.707106781187
	t14 = t02 + t22
	t02 = (t02 - t22) * 0.707106781187
	t14 += t02
	t04 += t14
	t14 += t10
	t10 += t02
	t16 += t04
	t04 += t08
	t08 += t14
	t14 += t28
	t28 += t10
	t10 += t20
	t20 += t02
	t21 += t16
	t16 += t32
	t32 += t04
	t04 += t06
	t06 += t08
	t08 += t18
	t18 += t14
	t14 += t30
	t30 += t28
	t28 += t26
	t26 += t10
	t10 += t12
	t12 += t20
	t20 += t24
	t24 += t02

	v[dp+48] = -t33
	v[dp+49] = -t21
	v[dp+47] = -t21
	v[dp+50] = -t17
	v[dp+46] = -t17
	v[dp+51] = -t16
	v[dp+45] = -t16
	v[dp+52] = -t01
	v[dp+44] = -t01
	v[dp+53] = -t32
	v[dp+43] = -t32
	v[dp+54] = -t29
	v[dp+42] = -t29
	v[dp+55] = -t04
	v[dp+41] = -t04
	v[dp+56] = -t03
	v[dp+40] = -t03
	v[dp+57] = -t06
	v[dp+39] = -t06
	v[dp+58] = -t25
	v[dp+38] = -t25
	v[dp+59] = -t08
	v[dp+37] = -t08
	v[dp+60] = -t11
	v[dp+36] = -t11
	v[dp+61] = -t18
	v[dp+35] = -t18
	v[dp+62] = -t09
	v[dp+34] = -t09
	v[dp+63] = -t14
	v[dp+33] = -t14
	v[dp+32] = -t05
	v[dp+0] = t05
	v[dp+31] = -t30
	v[dp+1] = t30
	v[dp+30] = -t27
	v[dp+2] = t27
	v[dp+29] = -t28
	v[dp+3] = t28
	v[dp+28] = -t07
	v[dp+4] = t07
	v[dp+27] = -t26
	v[dp+5] = t26
	v[dp+26] = -t23
	v[dp+6] = t23
	v[dp+25] = -t10
	v[dp+7] = t10
	v[dp+24] = -t15
	v[dp+8] = t15
	v[dp+23] = -t12
	v[dp+9] = t12
	v[dp+22] = -t19
	v[dp+10] = t19
	v[dp+21] = -t20
	v[dp+11] = t20
	v[dp+20] = -t13
	v[dp+12] = t13
	v[dp+19] = -t24
	v[dp+13] = t24
	v[dp+18] = -t31
	v[dp+14] = t31
	v[dp+17] = -t02
	v[dp+15] = t02
	v[dp+16] = 0.0
}
