// Package setup implements the pre-upload environment checks: required
// configuration keys, external tools on PATH, dataset directory layout,
// and live connectivity to Roboflow. Each check runs independently and
// prints its own diagnostics; RunAll aggregates them into a summary.
package setup
