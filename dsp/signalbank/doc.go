// Package signalbank provides the multi-ear, multi-channel frame container
// passed between analysis stages.
//
// A Bank holds one frame: for every ear and channel a fixed number of
// samples, stored ear-major so that all channels of one ear are contiguous.
// Spectral stages use one sample per channel and treat [Bank.Row] as the
// per-ear write cursor; time-domain stages use [Bank.Signal].
//
// Each channel carries a centre frequency in Hz, which frequency-domain
// producers set once at initialization.
package signalbank
