// Package batch runs outline extraction over every PDF in a folder and
// writes one JSON file per input.
//
// Files are processed one at a time in name order. A failure in one file,
// including a panic in the decoder, is logged and counted and the batch
// moves on; only a missing input folder or an empty one aborts the run.
package batch
