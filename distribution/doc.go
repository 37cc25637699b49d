// SPDX-License-Identifier: MIT

// Package distribution turns graph measurements into plottable series:
// degree histograms, empirical and fitted power-law densities, shortest-path
// length distributions, and the Network of Organic Chemistry (NOC) reference
// tables they are compared against.
//
// Power-law fits are discrete maximum-likelihood fits:
//
//	p(k) = k^-α / ζ(α, k_min),   k ≥ k_min
//
// with the Hurwitz zeta function from gonum/mathext and the likelihood
// minimized with gonum/optimize. When k_min is not given it is chosen to
// minimize the Kolmogorov–Smirnov distance between data and fit.
package distribution
