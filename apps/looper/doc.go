/*
Package looper wraps the external loop modeling engine executable. The
engine is a black box to the rest of the system: it consumes an alignment
file plus a selection of movable residue ranges, builds one candidate
structure per invocation, and reports the candidate's scores on a single
summary line.

Candidate builds are independent of one another, so Submit runs them in
parallel. The alignment file and selection are read-only inputs shared by
every build; ranking downstream orders by score, not by completion order.

Note that a full wrapper for every engine option is not provided. Options
can be added on an as-needed basis.
*/
package looper
