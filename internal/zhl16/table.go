// Package zhl16 provides the sixteen published Bühlmann ZH-L16C
// half-time/coefficient tuples. The table is immutable package data;
// compartments are numbered 1..16.
package zhl16

// Tuple is one compartment's inert-gas coefficients for nitrogen and
// helium: a/b are the Bühlmann M-value coefficients, ht is the half-time
// in minutes.
type Tuple struct {
	AN2, BN2, HtN2 float64
	AHe, BHe, HtHe float64
}

// Compartments holds the sixteen ZH-L16C tuples, indexed 0..15 for
// compartments 1..16.
var Compartments = [16]Tuple{
	{AN2: 1.2599, BN2: 0.5050, HtN2: 5.0, AHe: 1.6189, BHe: 0.4770, HtHe: 1.88},
	{AN2: 1.0000, BN2: 0.6514, HtN2: 8.0, AHe: 1.3830, BHe: 0.5747, HtHe: 3.02},
	{AN2: 0.8618, BN2: 0.7222, HtN2: 12.5, AHe: 1.1919, BHe: 0.6527, HtHe: 4.72},
	{AN2: 0.7562, BN2: 0.7825, HtN2: 18.5, AHe: 1.0458, BHe: 0.7223, HtHe: 6.99},
	{AN2: 0.6667, BN2: 0.8126, HtN2: 27.0, AHe: 0.9220, BHe: 0.7582, HtHe: 10.21},
	{AN2: 0.5600, BN2: 0.8434, HtN2: 38.3, AHe: 0.8205, BHe: 0.8125, HtHe: 14.48},
	{AN2: 0.4947, BN2: 0.8693, HtN2: 54.3, AHe: 0.7305, BHe: 0.8434, HtHe: 20.53},
	{AN2: 0.4500, BN2: 0.8910, HtN2: 77.0, AHe: 0.6502, BHe: 0.8693, HtHe: 29.11},
	{AN2: 0.4187, BN2: 0.9092, HtN2: 109.0, AHe: 0.5950, BHe: 0.8910, HtHe: 41.20},
	{AN2: 0.3798, BN2: 0.9222, HtN2: 146.0, AHe: 0.5545, BHe: 0.9092, HtHe: 55.19},
	{AN2: 0.3497, BN2: 0.9319, HtN2: 187.0, AHe: 0.5333, BHe: 0.9222, HtHe: 70.69},
	{AN2: 0.3223, BN2: 0.9403, HtN2: 239.0, AHe: 0.5189, BHe: 0.9319, HtHe: 90.34},
	{AN2: 0.2971, BN2: 0.9477, HtN2: 305.0, AHe: 0.5181, BHe: 0.9403, HtHe: 115.29},
	{AN2: 0.2737, BN2: 0.9544, HtN2: 390.0, AHe: 0.5176, BHe: 0.9477, HtHe: 147.42},
	{AN2: 0.2523, BN2: 0.9602, HtN2: 498.0, AHe: 0.5172, BHe: 0.9544, HtHe: 188.24},
	{AN2: 0.2327, BN2: 0.9653, HtN2: 635.0, AHe: 0.5119, BHe: 0.9602, HtHe: 240.03},
}

// Count is the number of tissue compartments in the model.
const Count = 16
