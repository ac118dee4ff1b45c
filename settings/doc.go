// Package settings merges layered configuration trees.
//
// A settings tree is a JSON-shaped map from string keys to heterogeneous
// values: scalars, ordered sequences, or nested mappings. Merge combines a
// default tree with a caller-supplied override tree under a strict
// compatibility policy: overrides win for scalars, sequences concatenate
// (defaults first), mappings merge recursively, and any shape disagreement
// fails loudly instead of guessing.
package settings
