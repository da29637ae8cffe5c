// SPDX-License-Identifier: MIT

package interaction

// Compile-time capability checks.
var (
	_ Term = (*Exchange)(nil)
	_ Term = (*DM)(nil)
	_ Term = (*Biquadratic)(nil)
	_ Term = (*FourSpin)(nil)
	_ Term = (*ThreeSpin)(nil)
	_ Term = (*Dipolar)(nil)
	_ Term = (*Uniaxial)(nil)
	_ Term = (*Hexagonal)(nil)
	_ Term = (*Zeeman)(nil)
	_ Term = (*Tip)(nil)
	_ Term = (*ModulatedExchange)(nil)
	_ Term = (*ModulatedAnisotropy)(nil)
	_ Term = (*DefectExchange)(nil)
	_ Term = (*DefectDM)(nil)
	_ Term = (*DefectAnisotropy)(nil)

	_ Pairer = (*Exchange)(nil)
	_ Pairer = (*DM)(nil)
	_ Pairer = (*Biquadratic)(nil)
	_ Pairer = (*FourSpin)(nil)
	_ Pairer = (*ThreeSpin)(nil)
	_ Pairer = (*Dipolar)(nil)
	_ Pairer = (*ModulatedExchange)(nil)
	_ Pairer = (*DefectExchange)(nil)
	_ Pairer = (*DefectDM)(nil)
)
