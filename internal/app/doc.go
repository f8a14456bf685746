// Package app contains the interactive controller for piigen.
//
// The design splits a pure planning core from console I/O: RunConfig is a
// structured description of one run, BuildPlan turns it into a validated
// Plan, and Prompter is the only component that touches the terminal. App
// drives the sequence - input mode, naming basis, batch size, large-batch
// confirmation, format selection - then generates the batch once and hands
// it to each selected exporter in fixed order.
package app
