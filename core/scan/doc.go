// Package scan enumerates asset files and derives their asset names.
//
// A Source yields Entry values lazily through an iter.Seq2. Problems with a single
// entry (a permission error, a failed listing page) are yielded as errors next to
// that entry and enumeration continues; the consumer decides what to skip.
//
// # Sources
//
//   - FS: the local filesystem, matched with filepath.Glob patterns such as "*.png".
//   - Bucket: a MinIO/S3 bucket, listed under "dir/" and matched with path.Match.
//
// # Names
//
// NameOf turns "assets/sounds/hit.wav" into "hit". A path without a usable stem
// yields ErrNoName, which the batch loader treats as a fatal precondition failure.
package scan
