// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import "fmt"

// Build-time variables set via -ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersionInfo returns the full version string.
func GetVersionInfo() string {
	return fmt.Sprintf("license-scan %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
