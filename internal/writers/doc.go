// Package writers turns alignment reports into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (report text, conservation
//     blocks, JSON/JSONL/YAML/FASTA).
//   - The align engines stay domain-only and never see a format name.
//   - JSON, JSONL and YAML go through pkg/api (v1) for a stable wire format.
package writers
