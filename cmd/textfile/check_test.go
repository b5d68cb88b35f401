//go:build checks

package main

import (
	"testing"

	"lesiw.io/textfile/internal/testcheck"
)

func TestChecks(t *testing.T) { testcheck.Run(t) }
