// SPDX-License-Identifier: MIT

package observable

var (
	_ Observable = (*Energy)(nil)
	_ Observable = (*Magnetisation)(nil)
	_ Observable = (*AbsoluteMagnetisation)(nil)
	_ Observable = (*NCMRContrast)(nil)
	_ Observable = (*WindingNumber)(nil)
)
