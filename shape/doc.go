// SPDX-License-Identifier: MIT

// Package shape is the catalog of sampled pulse shapes used to build waves.
//
// A Catalog maps a shape name to a generator and the ordered names of its
// arguments. Given a Descriptor (shape name, arguments, span in seconds and
// sample rate) it produces a Sample: a time axis starting at 0 spaced
// 1/rate with round(span*rate)+1 points, the generated values, a name and
// the append rule used later when waves are concatenated.
//
// Built-in shapes (all unit amplitude):
//
//	gaussian(peak_x, sigma)              const(lv)
//	exp_rising(peak_x, tau)              exp_falling(peak_x, tau)
//	gaussian_square(first_peak_x, flat, sigma)
//	exp_square(first_peak_x, flat, tau)
//	sine(period, start_phase)            sine2(frequency, start_phase)
//	cosine(period, start_phase)          cosine2(frequency, start_phase)
//	square(start, flat)                  drag(peak_x, sigma, beta)
//	chirp(f0, f1, start_phase)           pulse_train(period, duty)
//	triangle(period)
//
// Arguments are passed by keyword (Descriptor.Args) or by position
// (Descriptor.Values, in ArgNames order). Custom generators are added with
// Catalog.Register.
//
// Descriptor lists can be kept in TOML files, see DecodeDescriptors and
// LoadDescriptorsFile.
//
// Errors are sentinels (ErrUnknownShape, ErrMissingArg, ErrArgCount,
// ErrBadTimeline, ErrDuplicateShape, ErrBadShapeFunc, ErrBadOutput,
// ErrDescriptorFile); match them with errors.Is.
package shape
