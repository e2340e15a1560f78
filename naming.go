// SPDX-License-Identifier: EPL-2.0

package snrnoise

import (
	"path/filepath"
	"strconv"
	"strings"
)

// OutputName returns "{base}_noisy_SNR_{snr}dB{ext}" for input, without any
// directory part. The ratio is printed in its shortest form, so 5 gives "5"
// and 12.5 gives "12.5".
func OutputName(input string, snrDB float64) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	return stem + "_noisy_SNR_" + strconv.FormatFloat(snrDB, 'f', -1, 64) + "dB" + ext
}
