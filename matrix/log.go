// SPDX-License-Identifier: MIT

package matrix

import logging "github.com/ipfs/go-log/v2"

// LogSubsystem is the go-log subsystem name used by this package.
const LogSubsystem = "matrix"

var log = logging.Logger(LogSubsystem)
