// SPDX-License-Identifier: EPL-2.0

package pcm

// Int16ToFloat32 maps a sample into [-1, 1).
func Int16ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}

// Float32ToInt16 clamps x to [-1, 1] and scales it by 32767 so that the
// positive peak does not overflow.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
