// Package testcase loads YAML-described drag scenarios (§6) and runs
// them against pkg/drag, checking the result against the expected grid
// and error set under a chosen drag variant and, through
// CheckAllTransforms, every grid symmetry and the reversed drag (§8).
package testcase
