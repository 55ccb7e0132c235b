// Package uploader drives the sequential upload pipeline: configuration
// gate, CLI dependency check, strict dataset verification, data.yaml
// generation, authentication, interactive confirmation, and the
// best-effort per-image upload loop.
//
// The stages run in order and the first failure aborts the run. Inside
// the upload loop the semantics flip: individual image failures are
// logged and skipped so one bad file never aborts the batch.
package uploader
