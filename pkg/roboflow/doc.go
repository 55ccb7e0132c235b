// Package roboflow is a minimal client for the Roboflow REST API covering
// what the dataset tools need: resolving the workspace behind an API key,
// resolving a project, and uploading single images into a project split.
package roboflow
