/*
Package pipeline implements a three-stage concurrent file transfer with a
cyclic baton protocol.

# Overview

Three goroutines cooperate on one record at a time:

  - Producer reads records from the input and writes each one as a
    length-prefixed frame to an OS pipe (the byte channel).
  - Relay reads one frame from the pipe into the shared line buffer.
  - Consumer runs the header filter over the buffer and writes body
    records to the output.

# Synchronization

A single token circulates through three single-slot hand-off channels,
one per directed edge of the cycle (producer→relay, relay→consumer,
consumer→producer). A stage runs only while holding the token, so at
most one stage touches the shared buffer at any instant and activation
order is fixed. The channel hand-off establishes happens-before for the
buffer, its length, and the end-of-input flag; no lock or atomic is
needed anywhere in the steady state.

One full circulation moves exactly one record. The terminating
circulation carries only the end-of-input flag.

# Failure

A fatal stage error cancels the sibling stages through the run context
and closes both pipe ends so nothing stays blocked in channel I/O. The
process-level policy (distinct exit codes per error class) lives in the
cmd; this package only classifies errors with sentinel values.
*/
package pipeline
