// Package sizing is a standalone module-sizing calculator: given a torque
// and material strengths it derives the minimum required tooth module and
// filters a library of standard module values against it.
//
// The strength formula is a simplified proxy, not a certified gear-standard
// (AGMA/ISO) calculation:
//
//	m_min = max( (T/τ)^(1/3), (T/σ)^(1/3) )
//
// with T in N·mm and τ (shear) / σ (tensile) in MPa. It is shared read-only
// with the train builder (every gear in an accepted design is sized with
// MinModule); everything else in this package — candidate generation,
// filtering, step-resolution formatting — is an independent utility the
// search engine never calls.
//
// Guarantees: deterministic, sentinel-only failures, no panics on user input.
package sizing
