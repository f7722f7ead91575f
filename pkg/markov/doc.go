/*
Package markov implements a word-level Markov chain text generator backed by
a from-scratch, fixed-capacity hash table.

The table is an open-addressed array with backward linear probing and keeps
every observed (prefix, successor) pair, so suffix frequency survives into
generation as duplicate entries. The Model builds its table once from a
token stream and can then generate any number of independent sequences by
frequency-weighted random walk.

The table never grows: callers size it above the expected distinct-prefix
count, and Build reports ErrTableFull when that estimate was too small.
*/
package markov
